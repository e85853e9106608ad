package main

import (
	"io"
	"strconv"

	"wordstats.lopezb.com/internal/wordfreq"
)

// Pre-allocated buffers for the most frequent responses. Reusing them
// removes every allocation from the PONG / OK / small-integer paths.
var (
	respOK   = []byte("+OK\r\n")
	respPong = []byte("+PONG\r\n")
	respZero = []byte(":0\r\n")
	respOne  = []byte(":1\r\n")
)

func (app *application) writeSimpleStringResponse(w io.Writer, s string) error {
	if s == "OK" {
		_, err := w.Write(respOK)
		return err
	}
	if s == "PONG" {
		_, err := w.Write(respPong)
		return err
	}

	// Format: +string\r\n
	buf := make([]byte, 0, 1+len(s)+2)
	buf = append(buf, '+')
	buf = append(buf, s...)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

func (app *application) writeErrorResponse(w io.Writer, errStr string) error {
	// Format: -string\r\n
	buf := make([]byte, 0, 1+len(errStr)+2)
	buf = append(buf, '-')
	buf = append(buf, errStr...)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

func (app *application) writeBulkStringResponse(w io.Writer, s string) error {
	// Format: $length\r\nstring\r\n
	buf := make([]byte, 0, 16+len(s))
	buf = append(buf, '$')
	buf = strconv.AppendInt(buf, int64(len(s)), 10)
	buf = append(buf, '\r', '\n')
	buf = append(buf, s...)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

func (app *application) writeIntegerResponse(w io.Writer, i int) error {
	// 0 and 1 cover most WF.COUNT and WF.ADD replies on small batches.
	if i == 0 {
		_, err := w.Write(respZero)
		return err
	}
	if i == 1 {
		_, err := w.Write(respOne)
		return err
	}

	// Format: :integer\r\n
	buf := make([]byte, 0, 24)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(i), 10)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

// writeFloatResponse writes a float as a Bulk String, the way Redis returns
// doubles under RESP2. One fractional digit is always exact here: a median
// of integer counts is either n.0 or n.5.
func (app *application) writeFloatResponse(w io.Writer, f float64) error {
	return app.writeBulkStringResponse(w, strconv.FormatFloat(f, 'f', 1, 64))
}

// writeEntriesResponse writes top-K entries as a flat RESP array alternating
// word (bulk string) and count (integer), the shape Redis uses for
// TOPK.LIST WITHCOUNT. The whole response goes out in a single Write.
func (app *application) writeEntriesResponse(w io.Writer, entries []wordfreq.Entry) error {
	buf := make([]byte, 0, 16+len(entries)*24)

	buf = append(buf, '*')
	buf = strconv.AppendInt(buf, int64(len(entries)*2), 10)
	buf = append(buf, '\r', '\n')

	for _, e := range entries {
		buf = append(buf, '$')
		buf = strconv.AppendInt(buf, int64(len(e.Word)), 10)
		buf = append(buf, '\r', '\n')
		buf = append(buf, e.Word...)
		buf = append(buf, '\r', '\n')

		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(e.Count), 10)
		buf = append(buf, '\r', '\n')
	}

	_, err := w.Write(buf)
	return err
}
