package main

// commands creates a new router and registers all the application's command handlers.
// This is the single source of truth for what commands the server supports.
func (app *application) commands() *Router {
	router := NewRouter()

	// Generic Commands
	router.Handle("PING", app.handlePing)
	router.Handle("DEL", app.handleDel)

	// Metrics
	router.Handle("INFO", app.handleInfo)

	// Word Frequency Sessions
	router.Handle("WF.ADD", app.handleAdd)
	router.Handle("WF.COUNT", app.handleCount)
	router.Handle("WF.TOPK", app.handleTopK)
	router.Handle("WF.MIN", app.handleMin)
	router.Handle("WF.MAX", app.handleMax)
	router.Handle("WF.MEDIAN", app.handleMedian)
	router.Handle("WF.STATS", app.handleStats)
	router.Handle("WF.DEBUG", app.handleDebug)
	router.Handle("WF.CLEAR", app.handleClear)

	return router
}
