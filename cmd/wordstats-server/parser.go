// RESP request parsing.
//
// The server speaks the REdis Serialization Protocol on the wire. RESP keeps
// us compatible with existing tooling (redis-cli, redis-benchmark, any Redis
// client library) and its length-prefixed framing means word data never needs
// escaping, whatever characters it contains.
//
// Only the request subset is implemented, in the two shapes a server ever
// receives:
//
// RESP Arrays (standard): an Array (*) of Bulk Strings ($), the format used
// by programmatic clients. Example: "*2\r\n$7\r\nWF.TOPK\r\n$5\r\nfruit\r\n"
//
// Inline commands (human/debug): a space-separated line, the format typed
// into netcat or telnet. Example: "WF.TOPK fruit\r\n"
//
// The parser is hardened against hostile clients: bulk-string and array
// headers are bounds-checked before any allocation, and lines that never
// terminate are cut off at MaxLineSize.

package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
)

// Protocol limits preventing oversized allocations from malicious headers.
const (
	// MaxBulkLength limits a single bulk string to 512MB, matching the
	// Redis proto-max-bulk-len default.
	MaxBulkLength = 512 * 1024 * 1024

	// MaxArrayLen limits the number of elements in a command array.
	MaxArrayLen = 1 << 20

	// MaxLineSize limits header and inline command line length.
	MaxLineSize = 64 * 1024
)

var (
	ErrInvalidSyntax = errors.New("ERR protocol error: invalid syntax")
	ErrLineTooLong   = errors.New("ERR protocol error: line too long")
	ErrBulkTooLarge  = errors.New("ERR protocol error: bulk string exceeds 512MB limit")
	ErrArrayTooLong  = errors.New("ERR protocol error: array exceeds 1M elements limit")
)

type Parser struct {
	reader *bufio.Reader
}

func NewParser(conn io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReaderSize(conn, 4096),
	}
}

// Parse reads one command from the connection, in either inline or RESP
// array form, and returns it as a flat slice: command name first, then
// arguments.
func (p *Parser) Parse() ([]string, error) {
	line, err := p.readLine()
	if err != nil {
		return nil, err
	}

	if len(line) == 0 {
		return nil, ErrInvalidSyntax
	}

	if line[0] == '*' {
		return p.parseRESPArray(line)
	}

	return p.parseInline(line)
}

// readLine reads bytes until '\n', enforcing MaxLineSize so a client that
// never sends a newline cannot grow the buffer without bound.
func (p *Parser) readLine() ([]byte, error) {
	line, isPrefix, err := p.reader.ReadLine()
	if err != nil {
		return nil, err
	}

	// Fast path: the line fit in the reader's buffer.
	if !isPrefix {
		return line, nil
	}

	var buf bytes.Buffer
	buf.Write(line)

	for isPrefix {
		line, isPrefix, err = p.reader.ReadLine()
		if err != nil {
			return nil, err
		}

		// Check before writing so we never allocate past the limit.
		if buf.Len()+len(line) > MaxLineSize {
			return nil, ErrLineTooLong
		}
		buf.Write(line)
	}

	return buf.Bytes(), nil
}

// parseInline splits a space-separated command line.
func (p *Parser) parseInline(line []byte) ([]string, error) {
	parts := bytes.Fields(line)
	if len(parts) == 0 {
		return nil, ErrInvalidSyntax
	}

	result := make([]string, len(parts))
	for i, part := range parts {
		result[i] = string(part)
	}

	return result, nil
}

// parseRESPArray parses "*<count>\r\n" followed by count bulk strings.
func (p *Parser) parseRESPArray(header []byte) ([]string, error) {
	count, err := strconv.Atoi(string(bytes.TrimSpace(header[1:])))
	if err != nil {
		return nil, ErrInvalidSyntax
	}

	// Null arrays (*-1) and empty arrays (*0) carry no command.
	if count <= 0 {
		return []string{}, nil
	}

	if count > MaxArrayLen {
		return nil, ErrArrayTooLong
	}

	command := make([]string, 0, count)

	for i := 0; i < count; i++ {
		str, err := p.parseBulkString()
		if err != nil {
			return nil, err
		}
		command = append(command, str)
	}

	return command, nil
}

// Buffered returns the number of bytes waiting in the reader. A non-zero
// value means the client pipelined further commands, so the response flush
// can be deferred.
func (p *Parser) Buffered() int {
	return p.reader.Buffered()
}

// parseBulkString reads "$<length>\r\n<data>\r\n". Null bulk strings ($-1)
// come back as empty strings; no command here distinguishes the two.
func (p *Parser) parseBulkString() (string, error) {
	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	if len(line) == 0 || line[0] != '$' {
		return "", ErrInvalidSyntax
	}

	length, err := strconv.Atoi(string(bytes.TrimSpace(line[1:])))
	if err != nil {
		return "", ErrInvalidSyntax
	}

	if length == -1 {
		return "", nil
	}

	if length < 0 {
		return "", ErrInvalidSyntax
	}
	if length > MaxBulkLength {
		return "", ErrBulkTooLarge
	}

	// Read data plus trailing CRLF in one ReadFull.
	buf := make([]byte, length+2)
	if _, err := io.ReadFull(p.reader, buf); err != nil {
		return "", err
	}

	if buf[length] != '\r' || buf[length+1] != '\n' {
		return "", ErrInvalidSyntax
	}

	return string(buf[:length]), nil
}
