package main

import (
	"fmt"
	"io"
)

// emptyStateResponse sends the empty-state error for queries that are
// undefined before any word has been recorded (minimum, maximum, median).
func (app *application) emptyStateResponse(w io.Writer) {
	_ = app.writeErrorResponse(w, "ERR no words recorded")
}

// unknownCommandResponse sends an unknown command error to the client.
func (app *application) unknownCommandResponse(w io.Writer, commandName string) {
	msg := fmt.Sprintf("ERR unknown command '%s'", commandName)
	_ = app.writeErrorResponse(w, msg)
}

// wrongNumberOfArgsResponse sends a wrong number of arguments error to the client.
func (app *application) wrongNumberOfArgsResponse(w io.Writer, commandName string) {
	msg := fmt.Sprintf("ERR wrong number of arguments for '%s' command", commandName)
	_ = app.writeErrorResponse(w, msg)
}
