// SPDX-License-Identifier: MIT

// Package mtx: the coordinate-format reader.
package mtx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/semipath/matrix"
	"github.com/katalvlaran/semipath/semiring"
)

// header carries the parsed banner fields this reader cares about.
type header struct {
	pattern   bool // no value column; every entry is weight 1
	symmetric bool // mirror entries across the diagonal
}

// Read parses a Matrix Market coordinate stream into a square dense weight
// matrix under the conventions of sr: absent entries hold sr.Zero(), the
// diagonal holds sr.One().
//
// Steps:
//  1. Parse and validate the "%%MatrixMarket" banner.
//  2. Skip '%' comments and blank lines; parse the size line; square the
//     matrix up to max(rows, cols).
//  3. Read exactly nnz entries (1-based indices), translating pattern
//     entries to weight 1 and mirroring under a symmetric header.
//     A listed diagonal entry is ignored — the diagonal belongs to 1̄.
//
// Complexity: O(n² + nnz) time, O(n²) memory.
func Read(r io.Reader, sr semiring.Semiring[float64]) (*matrix.Dense[float64], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// 1. Banner is the mandatory first line.
	if !sc.Scan() {
		return nil, fmt.Errorf("Read: empty stream: %w", ErrBadHeader)
	}
	hdr, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	// 2. Size line: first non-comment, non-blank line.
	rows, cols, nnz, err := parseSize(sc)
	if err != nil {
		return nil, err
	}
	n := rows
	if cols > n {
		n = cols
	}

	W, err := matrix.NewDense(n, sr.Zero())
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for i := 0; i < n; i++ {
		row, _ := W.RowView(i)
		row[i] = sr.One()
	}

	// 3. Entry lines.
	read := 0
	for read < nnz && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		i, j, w, err := parseEntry(line, hdr)
		if err != nil {
			return nil, err
		}
		read++
		if i >= n || j >= n {
			return nil, fmt.Errorf("Read: entry (%d,%d) outside %dx%d: %w", i+1, j+1, n, n, ErrBadEntry)
		}
		if i == j {
			continue // diagonal is owned by the semiring's one
		}
		rowI, _ := W.RowView(i)
		rowI[j] = w
		if hdr.symmetric {
			rowJ, _ := W.RowView(j)
			rowJ[i] = w
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if read < nnz {
		return nil, fmt.Errorf("Read: got %d of %d entries: %w", read, nnz, ErrTruncated)
	}

	return W, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, sr semiring.Semiring[float64]) (*matrix.Dense[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f, sr)
}

// parseHeader validates the banner and extracts the pattern/symmetric flags.
// Expected shape: %%MatrixMarket matrix coordinate <field> <symmetry>.
func parseHeader(line string) (header, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) != 5 || fields[0] != "%%matrixmarket" {
		return header{}, fmt.Errorf("parseHeader: %q: %w", line, ErrBadHeader)
	}
	if fields[1] != "matrix" || fields[2] != "coordinate" {
		return header{}, fmt.Errorf("parseHeader: %s %s: %w", fields[1], fields[2], ErrUnsupported)
	}

	var h header
	switch fields[3] {
	case "real", "integer":
		// value column present
	case "pattern":
		h.pattern = true
	default:
		return header{}, fmt.Errorf("parseHeader: field %s: %w", fields[3], ErrUnsupported)
	}
	switch fields[4] {
	case "general":
		// entries as listed
	case "symmetric":
		h.symmetric = true
	default:
		return header{}, fmt.Errorf("parseHeader: symmetry %s: %w", fields[4], ErrUnsupported)
	}

	return h, nil
}

// parseSize scans forward to the size line and parses "rows cols nnz".
func parseSize(sc *bufio.Scanner) (rows, cols, nnz int, err error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, 0, 0, fmt.Errorf("parseSize: %q: %w", line, ErrBadEntry)
		}
		dims := make([]int, 3)
		for k, f := range fields {
			v, convErr := strconv.Atoi(f)
			if convErr != nil || v < 0 {
				return 0, 0, 0, fmt.Errorf("parseSize: %q: %w", line, ErrBadEntry)
			}
			dims[k] = v
		}

		return dims[0], dims[1], dims[2], nil
	}
	if err := sc.Err(); err != nil {
		return 0, 0, 0, fmt.Errorf("parseSize: %w", err)
	}

	return 0, 0, 0, fmt.Errorf("parseSize: no size line: %w", ErrTruncated)
}

// parseEntry parses one data line into 0-based indices and a weight.
func parseEntry(line string, hdr header) (i, j int, w float64, err error) {
	fields := strings.Fields(line)
	want := 3
	if hdr.pattern {
		want = 2
	}
	if len(fields) < want {
		return 0, 0, 0, fmt.Errorf("parseEntry: %q: %w", line, ErrBadEntry)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil || row < 1 {
		return 0, 0, 0, fmt.Errorf("parseEntry: row %q: %w", fields[0], ErrBadEntry)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil || col < 1 {
		return 0, 0, 0, fmt.Errorf("parseEntry: col %q: %w", fields[1], ErrBadEntry)
	}

	weight := 1.0 // pattern files carry no value column
	if !hdr.pattern {
		weight, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parseEntry: value %q: %w", fields[2], ErrBadEntry)
		}
	}

	// 1-based on the wire, 0-based in memory.
	return row - 1, col - 1, weight, nil
}
