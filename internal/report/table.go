package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\xEF\xBB\xBF"

// ReadTable reads a whole CSV stream into rows, header first. A leading
// UTF-8 byte order mark is dropped.
func ReadTable(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// table gives named access to the data rows of a parsed CSV.
type table struct {
	name    string
	columns map[string]int
	rows    [][]string
	// line numbers of rows in the source, header is line 1
	lines []int
}

func newTable(name string, raw [][]string, required []string) (*table, error) {
	if len(raw) == 0 {
		return nil, &EmptyTableError{Table: name}
	}

	t := &table{name: name, columns: make(map[string]int, len(raw[0]))}
	for i, h := range raw[0] {
		key := headerKey(h)
		if _, ok := t.columns[key]; !ok {
			t.columns[key] = i
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := t.columns[headerKey(col)]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Table: name, Columns: missing}
	}

	for i, rec := range raw[1:] {
		if isBlank(rec) {
			continue
		}
		t.rows = append(t.rows, rec)
		t.lines = append(t.lines, i+2)
	}
	if len(t.rows) == 0 {
		return nil, &EmptyTableError{Table: name}
	}
	return t, nil
}

func (t *table) cell(row int, column string) string {
	idx := t.columns[headerKey(column)]
	rec := t.rows[row]
	if idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
