// SPDX-License-Identifier: MIT

// Package matrix - line-oriented text codec.
//
// Format (UTF-8, blank lines tolerated anywhere, surrounding whitespace trimmed):
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(<row>, <col>, <value>)
//	...
//
// Rules:
//   - rows= and cols= appear exactly once each and before any data line.
//   - A data line is parenthesised and holds exactly three comma-separated
//     fields: integer row, integer col, float64 value.
//   - A value of 0 is elided; a repeated coordinate overwrites (last line wins).
//   - Out-of-range coordinates and (under the default policy) non-finite values
//     are format errors; nothing is skipped silently.
//
// The writer emits entries row-major so outputs are deterministic and diffable;
// values use the shortest representation that parses back to the same float64.
package matrix

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/readahead"
	"go.uber.org/zap"
)

// Format literals (no magic strings).
const (
	headerRows = "rows="
	headerCols = "cols="
	lineOpen   = "("
	lineClose  = ")"
	fieldSep   = ","
	fieldCount = 3
)

// ReadFile parses the file at path into a new SparseMatrix.
//
// Implementation:
//   - Stage 1: open the file (ErrIO on failure).
//   - Stage 2: optionally wrap it in an asynchronous read-ahead reader.
//   - Stage 3: parse via the shared scanner loop.
//   - Stage 4: release the read-ahead reader and the file on every exit path.
//
// Errors:
//   - ErrIO (wrapping *fs.PathError, so errors.Is(err, fs.ErrNotExist) works).
//   - *FormatError (errors.Is(err, ErrFormat)) on any structural violation.
//
// Returns nil on error; no partially parsed matrix ever escapes.
func ReadFile(path string, opts ...Option) (*SparseMatrix, error) {
	o := gatherOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("ReadFile", err)
	}
	defer f.Close()

	var src io.Reader = f
	if o.readAhead {
		ra, raErr := readahead.NewReaderSize(f, o.readAheadBuffers, o.readAheadSize)
		if raErr != nil {
			return nil, ioErrorf("ReadFile", raErr)
		}
		defer ra.Close()
		src = ra
	}

	m, err := parse(src, path, o)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Read parses the text format from r into a new SparseMatrix.
// r is consumed but not closed.
//
// Errors:
//   - ErrIO when r fails; *FormatError on structural violations.
func Read(r io.Reader, opts ...Option) (*SparseMatrix, error) {
	o := gatherOptions(opts...)
	o.readAhead = false // r is consumed as given

	return parse(r, "stream", o)
}

// parser carries the header state across lines.
type parser struct {
	rows, cols         int
	haveRows, haveCols bool
	m                  *SparseMatrix
	o                  Options
}

// parse is the shared scanner loop behind Read and ReadFile.
// Complexity: O(bytes) time, O(nnz) space.
func parse(r io.Reader, source string, o Options) (*SparseMatrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	p := &parser{o: o}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := p.line(lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Line: lineNo + 1, Reason: ReasonLineTooLong, Err: err}
		}

		return nil, ioErrorf("Read", err)
	}
	if p.m == nil {
		return nil, &FormatError{Reason: ReasonMissingHeader}
	}

	o.logger.Debug("matrix: parsed",
		zap.String("source", source),
		zap.Int("rows", p.m.rows),
		zap.Int("cols", p.m.cols),
		zap.Int("nnz", len(p.m.entries)),
		zap.Int("lines", lineNo),
		zap.Bool("read_ahead", o.readAhead))

	return p.m, nil
}

// line dispatches one trimmed, non-empty line.
func (p *parser) line(n int, text string) error {
	switch {
	case strings.HasPrefix(text, headerRows):
		v, err := p.header(n, text, headerRows, p.haveRows)
		if err != nil {
			return err
		}
		p.rows, p.haveRows = v, true
	case strings.HasPrefix(text, headerCols):
		v, err := p.header(n, text, headerCols, p.haveCols)
		if err != nil {
			return err
		}
		p.cols, p.haveCols = v, true
	case len(text) >= 2 && strings.HasPrefix(text, lineOpen) && strings.HasSuffix(text, lineClose):
		return p.data(n, text)
	default:
		return &FormatError{Line: n, Text: text, Reason: ReasonUnknownLine}
	}

	// Both headers known: the shape is fixed from here on.
	if p.haveRows && p.haveCols && p.m == nil {
		p.m = newSparse(p.rows, p.cols, p.o)
	}

	return nil
}

// header parses "<prefix><non-negative int>".
func (p *parser) header(n int, text, prefix string, seen bool) (int, error) {
	if seen {
		return 0, &FormatError{Line: n, Text: text, Reason: ReasonDuplicateHeader}
	}
	v, err := strconv.Atoi(strings.TrimSpace(text[len(prefix):]))
	if err != nil {
		return 0, &FormatError{Line: n, Text: text, Reason: ReasonBadHeader, Err: err}
	}
	if v < 0 {
		return 0, &FormatError{Line: n, Text: text, Reason: ReasonBadHeader, Err: ErrInvalidDimensions}
	}

	return v, nil
}

// data parses "(row, col, value)" and stores it through Set.
func (p *parser) data(n int, text string) error {
	if p.m == nil {
		return &FormatError{Line: n, Text: text, Reason: ReasonDataBeforeShape}
	}

	fields := strings.Split(text[len(lineOpen):len(text)-len(lineClose)], fieldSep)
	if len(fields) != fieldCount {
		return &FormatError{Line: n, Text: text, Reason: ReasonFieldCount}
	}

	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return &FormatError{Line: n, Text: text, Reason: ReasonBadIndex, Err: err}
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return &FormatError{Line: n, Text: text, Reason: ReasonBadIndex, Err: err}
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return &FormatError{Line: n, Text: text, Reason: ReasonBadValue, Err: err}
	}

	if !inBounds(row, col, p.m.rows, p.m.cols) {
		return &FormatError{Line: n, Text: text, Reason: ReasonOutOfBounds, Err: ErrOutOfRange}
	}
	if err = p.m.Set(row, col, val); err != nil {
		return &FormatError{Line: n, Text: text, Reason: ReasonNonFinite, Err: ErrNaNInf}
	}

	return nil
}

// WriteTo writes m in the text format to w (headers, then one line per entry,
// row-major). It implements io.WriterTo.
//
// Errors:
//   - ErrIO wrapping the writer's error; n reports bytes handed to the buffer so far.
//
// Complexity: O(nnz log nnz) for ordering plus O(output bytes).
func (m *SparseMatrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var total int64
	write := func(s string) error {
		n, err := bw.WriteString(s)
		total += int64(n)

		return err
	}

	if err := write(headerRows + strconv.Itoa(m.rows) + "\n"); err != nil {
		return total, ioErrorf("WriteTo", err)
	}
	if err := write(headerCols + strconv.Itoa(m.cols) + "\n"); err != nil {
		return total, ioErrorf("WriteTo", err)
	}
	for _, e := range m.Entries() {
		if err := write(formatEntry(e) + "\n"); err != nil {
			return total, ioErrorf("WriteTo", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return total, ioErrorf("WriteTo", err)
	}

	return total, nil
}

// WriteFile writes m to path, creating or truncating the file.
// The file is closed on every path; a failed Close is reported as ErrIO.
func (m *SparseMatrix) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf("WriteFile", err)
	}
	if _, err = m.WriteTo(f); err != nil {
		_ = f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return ioErrorf("WriteFile", err)
	}

	return nil
}

// formatEntry renders a single "(row, col, value)" data line.
func formatEntry(e Entry) string {
	return lineOpen +
		strconv.Itoa(e.Row) + fieldSep + " " +
		strconv.Itoa(e.Col) + fieldSep + " " +
		strconv.FormatFloat(e.Value, 'g', -1, 64) +
		lineClose
}
