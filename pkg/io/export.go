package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/posthop/pkg/cost"
)

type matrixJSON struct {
	Size  int        `json:"size"`
	Costs [][]*int64 `json:"costs"`
}

// WriteTable writes m as a tab-separated table. The diagonal is written as 0
// and every cell below it, or left undefined above it, as "NA". Rows are
// separated by "\n" with no trailing newline.
func WriteTable(m *cost.Matrix, w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := m.Size()
	for i := 0; i < n; i++ {
		if i > 0 {
			bw.WriteString(recordSep)
		}
		for j := 0; j < n; j++ {
			if j > 0 {
				bw.WriteString(fieldSep)
			}
			switch {
			case i == j:
				bw.WriteString("0")
				continue
			case i > j || !m.Defined(i, j):
				bw.WriteString(naToken)
				continue
			}
			c, _ := m.Cost(i, j)
			bw.WriteString(strconv.FormatInt(c, 10))
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// ExportTable writes m to a tab-separated file at path.
func ExportTable(m *cost.Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTable(m, f)
}

// WriteJSON encodes m as indented JSON. Cells below the diagonal and
// undefined cells are null. The output can be re-imported with [ReadJSON].
func WriteJSON(m *cost.Matrix, w io.Writer) error {
	n := m.Size()
	out := matrixJSON{Size: n, Costs: make([][]*int64, n)}
	for i := 0; i < n; i++ {
		row := make([]*int64, n)
		row[i] = new(int64)
		for j := i + 1; j < n; j++ {
			if c, err := m.Cost(i, j); err == nil {
				row[j] = &c
			}
		}
		out.Costs[i] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes m to a JSON file at path.
func ExportJSON(m *cost.Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}

// Export picks the codec from the file extension, like [Import].
func Export(m *cost.Matrix, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ExportJSON(m, path)
	}
	return ExportTable(m, path)
}
