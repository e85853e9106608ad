// main.go is the entry point for the wordstats server. It wires together the
// session registry and the network server and manages the operational
// lifecycle.
//
// What This Server Is
// ===================
//
// A single process holding any number of named word-counting sessions in
// memory. Clients add batches of words to a session and query three derived
// statistics: the top-K most frequent words, the minimum frequency present,
// and the median of the per-word frequency distribution. The sessions keep
// their ordered auxiliary structures current on every add, so top-K and
// minimum are cached lookups at query time.
//
// Everything lives in memory for the lifetime of the process. There is no
// journal, no snapshot, and no replication: restarting the server starts
// every session from zero. That keeps the operational surface to exactly one
// flag set and one TCP listener.
package main

import (
	"flag"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"wordstats.lopezb.com/internal/wordfreq"
)

type config struct {
	port            int
	maxConnections  int
	shutdownTimeout time.Duration
	idleTimeout     time.Duration
	topKSize        int
}

type application struct {
	config      config
	logger      *slog.Logger
	listener    net.Listener
	store       *Store
	router      *Router
	metrics     *Metrics
	readyCh     chan struct{}
	wg          sync.WaitGroup
	connLimiter chan struct{}
}

func main() {
	var cfg config

	flag.IntVar(&cfg.port, "port", 6579, "TCP server port")
	flag.IntVar(&cfg.maxConnections, "max-conn", 100, "Maximum concurrent connections")
	flag.DurationVar(&cfg.shutdownTimeout, "shutdown-timeout", 5*time.Second, "Graceful shutdown timeout")
	flag.DurationVar(&cfg.idleTimeout, "idle-timeout", 0, "Idle client connection timeout (0 for no timeout)")
	flag.IntVar(&cfg.topKSize, "topk-size", wordfreq.DefaultK, "Top-K list capacity for new sessions")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       NewStore(cfg.topKSize),
		metrics:     NewMetrics(),
		connLimiter: make(chan struct{}, cfg.maxConnections),
	}

	app.router = app.commands()

	if err := app.serve(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
