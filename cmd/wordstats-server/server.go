package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	rejectionTimeout          = 500 * time.Millisecond
	errMaxConnectionsResponse = "-ERR max number of clients reached\r\n"
)

// serve starts the TCP server and blocks until shutdown.
func (app *application) serve() error {
	//
	// DESIGN
	// ------
	//
	// The main challenge here is coordinating between new connections,
	// in-flight requests, and the shutdown signal without losing responses or
	// hanging indefinitely.
	//
	// 1. CONNECTION LIMITING
	//    A buffered channel (`connLimiter`) acts as a semaphore capping
	//    concurrent connections. A non-blocking send is a "try-acquire": if
	//    the buffer is full, the connection is rejected immediately, which
	//    protects the server from resource exhaustion under load.
	//
	// 2. GRACEFUL SHUTDOWN
	//    A dedicated goroutine listens for SIGINT/SIGTERM. On a signal it
	//    closes the listener to stop accepting new connections, then waits
	//    for all in-flight handlers to finish (tracked by a WaitGroup). A
	//    context timeout ensures the shutdown doesn't hang forever if a
	//    client is stuck.
	//
	// 3. ERROR PROPAGATION
	//    The shutdown goroutine reports its result back to the accept loop
	//    via a channel so main can return an appropriate error.
	//
	addr := fmt.Sprintf(":%d", app.config.port)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	app.listener = ln

	serverAddr := ln.Addr().String()

	if app.readyCh != nil {
		close(app.readyCh)
	}

	shutdownError := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("caught signal", "signal", s.String(), "address", serverAddr)
		app.logger.Info("shutting down server", "address", serverAddr)

		ctx, cancel := context.WithTimeout(context.Background(), app.config.shutdownTimeout)
		defer cancel()

		// Stop accepting new connections.
		if err := ln.Close(); err != nil {
			shutdownError <- err
		}

		wgDone := make(chan struct{})
		go func() {
			app.wg.Wait()
			close(wgDone)
		}()

		// Wait for either all connections to finish or for the timeout.
		select {
		case <-wgDone:
			shutdownError <- nil // Clean shutdown
		case <-ctx.Done():
			shutdownError <- ctx.Err() // Timeout
		}
	}()

	app.logger.Info("server starting", "address", serverAddr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break // Normal shutdown path
			}
			app.logger.Error("failed to accept connection", "error", err, "address", serverAddr)
			continue
		}

		select {
		case app.connLimiter <- struct{}{}:
			// A slot was available. Launch the handler.
			app.wg.Add(1)
			go app.handleConnection(conn)
		default:
			// No slot was available. Reject the connection.
			app.logger.Info("rejecting connection, limit reached", "remote_addr", conn.RemoteAddr().String())

			// Strict deadline so a client that never reads cannot block
			// the accept loop.
			_ = conn.SetWriteDeadline(time.Now().Add(rejectionTimeout))

			_, _ = conn.Write([]byte(errMaxConnectionsResponse))
			_ = conn.Close()
		}
	}

	err = <-shutdownError
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		app.logger.Error("server stopped with error", "error", err, "address", serverAddr)
		return err
	}

	app.logger.Info("server stopped gracefully", "address", serverAddr)
	return nil
}

// handleConnection manages the lifecycle of a single client connection.
func (app *application) handleConnection(conn net.Conn) {
	//
	// DESIGN
	// ------
	//
	// A request/response loop with buffered I/O and a "smart flush" for
	// pipelining.
	//
	// 1. BUFFERED WRITES
	//    Responses accumulate in a 4KB bufio.Writer and reach the socket in
	//    batches, reducing syscalls compared to one write per response.
	//
	// 2. SMART FLUSH
	//    When a client pipelines commands, the TCP stack delivers them in a
	//    single read. After processing a command, we check whether the
	//    parser's buffer still holds data; if so, we skip the flush and
	//    process the next command immediately, batching responses into one
	//    write. If the buffer is empty, we flush so the client is never left
	//    waiting.
	//
	// 3. RESOURCE CLEANUP
	//    The deferred operations release the semaphore slot, decrement the
	//    WaitGroup, close the connection, and flush buffered responses on
	//    every exit path.
	//
	defer func() { <-app.connLimiter }()
	defer app.wg.Done()
	defer func() { _ = conn.Close() }()

	app.metrics.TotalConnections.Add(1)

	remoteAddr := conn.RemoteAddr().String()
	app.logger.Info("new connection", "remote_addr", remoteAddr)

	parser := NewParser(conn)
	writer := bufio.NewWriterSize(conn, 4096)

	// Flush on exit even after a parse error mid-pipeline: responses to the
	// commands that did succeed must still be sent.
	defer func() { _ = writer.Flush() }()

	if app.config.idleTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(app.config.idleTimeout)); err != nil {
			app.logger.Error("failed to set initial read deadline", "error", err, "remote_addr", remoteAddr)
			return
		}
	}

	for {
		if app.config.idleTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(app.config.idleTimeout)); err != nil {
				app.logger.Error("failed to set read deadline", "error", err, "remote_addr", remoteAddr)
				return
			}
		}

		parts, err := parser.Parse()
		if err != nil {
			if err == io.EOF {
				app.logger.Info("client disconnected", "remote_addr", remoteAddr)
			} else {
				app.logger.Error("parser error", "error", err, "remote_addr", remoteAddr)
			}
			return
		}

		app.router.Dispatch(app, writer, parts)

		if parser.Buffered() == 0 {
			if err := writer.Flush(); err != nil {
				app.logger.Error("failed to flush response", "error", err, "remote_addr", remoteAddr)
				return
			}
		}
	}
}
