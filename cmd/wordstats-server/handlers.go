// handlers.go implements general utility commands.
//
// This file provides server-level commands that are not specific to any
// counting session: PING, INFO, and DEL.

package main

import (
	"fmt"
	"io"
	"strings"
)

// handlePing handles the PING command.
// Syntax: PING
//
// This is a standard liveness check used by clients to verify that the
// server connection is active and responsive.
func (app *application) handlePing(w io.Writer, args []string) {
	if len(args) != 0 {
		app.wrongNumberOfArgsResponse(w, "PING")
		return
	}

	_ = app.writeSimpleStringResponse(w, "PONG")
}

// handleInfo handles the INFO command.
// Syntax: INFO
//
// This command provides a text-based report of the server's internal state,
// following the Redis INFO format: CRLF-terminated key:value lines grouped
// into # sections. It is primarily used for monitoring and debugging.
func (app *application) handleInfo(w io.Writer, args []string) {
	if len(args) > 0 {
		// Sections (e.g. "INFO Server") are not supported, so we strictly
		// require zero arguments.
		app.wrongNumberOfArgsResponse(w, "INFO")
		return
	}

	totalConns := app.metrics.TotalConnections.Load()
	totalCmds := app.metrics.TotalCommands.Load()
	activeConns := len(app.connLimiter)

	var infoBuilder strings.Builder

	infoBuilder.WriteString("# Server\r\n")
	infoBuilder.WriteString(fmt.Sprintf("connections_total:%d\r\n", totalConns))
	infoBuilder.WriteString(fmt.Sprintf("connections_active:%d\r\n", activeConns))
	infoBuilder.WriteString(fmt.Sprintf("commands_processed_total:%d\r\n", totalCmds))

	infoBuilder.WriteString("# Sessions\r\n")
	infoBuilder.WriteString(fmt.Sprintf("sessions_count:%d\r\n", app.store.Len()))
	infoBuilder.WriteString(fmt.Sprintf("topk_size:%d\r\n", app.config.topKSize))
	for _, key := range app.store.Keys() {
		if analyzer, ok := app.store.Get(key); ok {
			infoBuilder.WriteString(fmt.Sprintf("session:%s words_distinct=%d words_total=%d\r\n",
				key, analyzer.DistinctWords(), analyzer.TotalWords()))
		}
	}

	if err := app.writeBulkStringResponse(w, infoBuilder.String()); err != nil {
		return
	}
}

// handleDel handles the DEL command.
// Syntax: DEL key [key ...]
//
// Removes the specified sessions. Keys that do not exist are ignored.
// Returns the number of sessions that were actually deleted.
func (app *application) handleDel(w io.Writer, args []string) {
	if len(args) == 0 {
		app.wrongNumberOfArgsResponse(w, "DEL")
		return
	}

	count := 0
	for _, key := range args {
		if app.store.Delete(key) {
			count++
		}
	}

	_ = app.writeIntegerResponse(w, count)
}
