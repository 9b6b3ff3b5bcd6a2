package io

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/posthop/pkg/cost"
)

// ErrSyntax is returned when a table or JSON document cannot be parsed into
// cells. Structural problems found after parsing are reported with the
// sentinels of package cost.
var ErrSyntax = errors.New("malformed cost table")

const (
	fieldSep  = "\t"
	recordSep = "\n"
	naToken   = "NA"
)

// maxLine bounds a single table row; 800 posts of 7-digit costs fit easily.
const maxLine = 4 << 20

// ReadTable decodes a tab-separated cost table from r.
//
// The first row fixes the size n. Every row must have n fields. Only cells on
// or above the diagonal are parsed; cells below it are skipped whatever they
// contain. "NA" on or above the diagonal marks an undefined cell. Windows line
// endings and trailing blank lines are accepted; a blank line between rows is
// an [ErrSyntax].
//
// ReadTable returns [ErrSyntax] for unparsable numbers and the validation
// errors of [cost.FromRows] for structural problems. It does not close r.
func ReadTable(r io.Reader) (*cost.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)

	var (
		rows  [][]int64
		n     int
		blank int // line number of the first blank line after row 0
		lineN int
	)
	for sc.Scan() {
		lineN++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" && len(rows) > 0 {
			if blank == 0 {
				blank = lineN
			}
			continue
		}
		if blank != 0 {
			return nil, fmt.Errorf("blank line %d inside table: %w", blank, ErrSyntax)
		}
		fields := strings.Split(line, fieldSep)
		if rows == nil {
			n = len(fields)
		}
		i := len(rows)
		if len(fields) != n {
			return nil, fmt.Errorf("row %d has %d fields, want %d: %w", i, len(fields), n, cost.ErrNonSquare)
		}
		row := make([]int64, n)
		for j, f := range fields {
			if j < i {
				row[j] = cost.NA
				continue
			}
			v, err := parseCell(f)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i, j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if len(rows) != n {
		if len(rows) < 2 {
			return nil, cost.ErrTooSmall
		}
		return nil, fmt.Errorf("table has %d rows and %d columns: %w", len(rows), n, cost.ErrNonSquare)
	}
	return cost.FromRows(rows)
}

func parseCell(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, naToken) {
		return cost.NA, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	if v < 0 {
		return 0, fmt.Errorf("%d: %w", v, cost.ErrNegativeCost)
	}
	return v, nil
}

// ImportTable reads a tab-separated cost table from the file at path.
func ImportTable(path string) (*cost.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadJSON decodes a matrix in the JSON form written by [WriteJSON]:
//
//	{"size": 3, "costs": [[0, 4, 9], [null, 0, 2], [null, null, 0]]}
//
// null marks an undefined cell. "size" is optional but must match the number
// of rows when present. It does not close r.
func ReadJSON(r io.Reader) (*cost.Matrix, error) {
	var doc matrixJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %v: %w", err, ErrSyntax)
	}
	if doc.Size != 0 && doc.Size != len(doc.Costs) {
		return nil, fmt.Errorf("size %d but %d rows: %w", doc.Size, len(doc.Costs), cost.ErrNonSquare)
	}
	rows := make([][]int64, len(doc.Costs))
	for i, in := range doc.Costs {
		rows[i] = make([]int64, len(in))
		for j, c := range in {
			switch {
			case c == nil:
				rows[i][j] = cost.NA
			case *c < 0 && j >= i:
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", i, j, *c, cost.ErrNegativeCost)
			default:
				rows[i][j] = *c
			}
		}
	}
	return cost.FromRows(rows)
}

// ImportJSON reads a JSON matrix from the file at path.
func ImportJSON(path string) (*cost.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Import picks the codec from the file extension: ".json" is read with
// [ImportJSON] and anything else as a tab-separated table.
func Import(path string) (*cost.Matrix, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ImportJSON(path)
	}
	return ImportTable(path)
}
