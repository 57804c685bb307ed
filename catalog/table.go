package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Cell is one value of a standard size row. Cells that do not parse as
// numbers keep their raw text.
type Cell struct {
	Value   float64
	Raw     string
	Numeric bool
}

// Num returns a numeric cell.
func Num(v float64) Cell {
	return Cell{Value: v, Raw: strconv.FormatFloat(v, 'g', -1, 64), Numeric: true}
}

func parseCell(s string) Cell {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Cell{Raw: s}
	}
	return Cell{Value: v, Raw: s, Numeric: true}
}

func (c Cell) String() string { return c.Raw }

// Row holds the values of one standard size in property order. A row may
// be shorter than the property list of its seal type, in which case it
// only sets the leading properties.
type Row []Cell

// SizeTable maps standard size designations to rows. It is immutable.
type SizeTable struct {
	rows  map[string]Row
	names []string // natural order
}

// NewSizeTable returns a table holding a copy of rows.
func NewSizeTable(rows map[string]Row) *SizeTable {
	t := &SizeTable{rows: make(map[string]Row, len(rows))}
	for name, row := range rows {
		t.rows[name] = append(Row(nil), row...)
		t.names = append(t.names, name)
	}
	SortNatural(t.names)
	return t
}

// Len returns the number of standard sizes in the table.
func (t *SizeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns the designations of the table in natural order.
func (t *SizeTable) Names() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}

// Row returns a copy of the row of designation name.
func (t *SizeTable) Row(name string) (Row, bool) {
	if t == nil {
		return nil, false
	}
	row, ok := t.rows[name]
	return append(Row(nil), row...), ok
}

// LoadWarning describes malformed table data that was skipped while loading.
// Loading never fails because of it.
type LoadWarning struct {
	File string
	Line int // 0 when the problem concerns the whole file
	Err  error
}

func (w *LoadWarning) Error() string {
	if w.Line == 0 {
		return fmt.Sprintf("%s: %v", w.File, w.Err)
	}
	return fmt.Sprintf("%s:%d: %v", w.File, w.Line, w.Err)
}

func (w *LoadWarning) Unwrap() error { return w.Err }

var (
	errNoName        = errors.New("row has no name")
	errNoNameColumn  = errors.New("header has no name column")
	errReservedName  = fmt.Errorf("row name %q is reserved", CustomDesignation)
	errDuplicateName = errors.New("duplicate row name, keeping the last")
)

// ReadSizeTable reads a CSV standard size table. The header row must have a
// "name" column; the remaining columns are taken in order as the values of
// the first arity properties. Malformed rows are skipped and reported as
// *LoadWarning values, which never prevent the table from loading.
func ReadSizeTable(r io.Reader, file string, arity int) (*SizeTable, []error) {
	var warnings []error
	warn := func(line int, err error) {
		warnings = append(warnings, &LoadWarning{File: file, Line: line, Err: err})
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			err = errors.New("missing header")
		}
		warn(0, err)
		return NewSizeTable(nil), warnings
	}
	nameCol := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), "name") {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		warn(1, errNoNameColumn)
		return NewSizeTable(nil), warnings
	}
	if cols := len(header) - 1; cols > arity {
		warn(1, fmt.Errorf("%d value columns for %d properties, extra columns ignored", cols, arity))
	}

	rows := make(map[string]Row)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				warn(0, err)
				break // reader failure, not malformed text
			}
			warn(perr.Line, err)
			continue
		}
		line, _ := cr.FieldPos(0)
		var name string
		if nameCol < len(record) {
			name = strings.TrimSpace(record[nameCol])
		}
		switch {
		case name == "":
			warn(line, errNoName)
			continue
		case name == CustomDesignation:
			warn(line, errReservedName)
			continue
		}
		values := make([]string, 0, len(record))
		for i, v := range record {
			if i != nameCol {
				values = append(values, v)
			}
		}
		for len(values) > 0 && strings.TrimSpace(values[len(values)-1]) == "" {
			values = values[:len(values)-1]
		}
		if len(values) > arity {
			values = values[:arity]
		}
		row := make(Row, len(values))
		for i, v := range values {
			row[i] = parseCell(v)
		}
		if _, dup := rows[name]; dup {
			warn(line, fmt.Errorf("%w: %q", errDuplicateName, name))
		}
		rows[name] = row
	}
	return NewSizeTable(rows), warnings
}
