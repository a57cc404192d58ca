package report

import (
	"fmt"
	"strings"
)

// MissingColumnError reports required columns absent from a table header.
type MissingColumnError struct {
	Table   string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s report is missing required column(s): %s", e.Table, strings.Join(e.Columns, ", "))
}

// EmptyTableError reports a table without data rows.
type EmptyTableError struct {
	Table string
}

func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("%s report contains no data rows", e.Table)
}

// MalformedNumberError reports a numeric cell that could not be normalized.
// Row is the 1-based line number in the source table, zero when unknown.
type MalformedNumberError struct {
	Column string
	Row    int
	Value  string
	Reason string
}

func (e *MalformedNumberError) Error() string {
	var sb strings.Builder
	if e.Row > 0 {
		fmt.Fprintf(&sb, "row %d, ", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&sb, "column %q: ", e.Column)
	}
	fmt.Fprintf(&sb, "malformed number %q", e.Value)
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}
