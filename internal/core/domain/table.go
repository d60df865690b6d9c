package domain

import (
	"fmt"
	"strings"
	"time"
)

// Row is one spreadsheet record keyed by column header.
type Row map[string]any

// Table is an ordered set of rows sharing a column header.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// EmptyTable returns a table with the given schema and no rows. Callers use it
// as the fallback when a sheet cannot be read.
func EmptyTable(columns []string) Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return Table{Columns: cols, Rows: []Row{}}
}

// NewTable builds a table from a raw value grid whose first row is the header.
// Header cells are whitespace-trimmed; short rows are padded with "".
func NewTable(values [][]any) Table {
	if len(values) == 0 {
		return Table{Columns: []string{}, Rows: []Row{}}
	}

	header := values[0]
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(toString(h))
	}

	rows := make([]Row, 0, len(values)-1)
	for _, raw := range values[1:] {
		r := make(Row, len(cols))
		for i, c := range cols {
			if i < len(raw) {
				r[c] = raw[i]
			} else {
				r[c] = ""
			}
		}
		rows = append(rows, r)
	}
	return Table{Columns: cols, Rows: rows}
}

// Len returns the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// IsEmpty reports whether the table has no data rows.
func (t Table) IsEmpty() bool { return len(t.Rows) == 0 }

// HasColumn reports whether name is part of the header.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns every cell of the named column in row order.
func (t Table) Column(name string) []any {
	out := make([]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, r[name])
	}
	return out
}

// Values flattens the table back to a header-first grid, the shape the
// spreadsheet API accepts for a full replace.
func (t Table) Values() [][]any {
	out := make([][]any, 0, len(t.Rows)+1)
	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	out = append(out, header)
	for _, r := range t.Rows {
		line := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			v, ok := r[c]
			if !ok || v == nil {
				v = ""
			}
			line[i] = v
		}
		out = append(out, line)
	}
	return out
}

// Clone returns a deep-enough copy: rows are new maps, cell values are shared.
func (t Table) Clone() Table {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		rows[i] = nr
	}
	return Table{Columns: cols, Rows: rows}
}

// CacheKey identifies one worksheet of one spreadsheet. An empty Worksheet
// means the first sheet.
type CacheKey struct {
	SourceID  string
	Worksheet string
}

func (k CacheKey) String() string {
	if k.Worksheet == "" {
		return k.SourceID
	}
	return k.SourceID + "#" + k.Worksheet
}

// CacheEntry is a fetched table and the time it was fetched.
type CacheEntry struct {
	Key       CacheKey
	Table     Table
	FetchedAt time.Time
}

// Fresh reports whether the entry is still inside its TTL window at now.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) < ttl
}

// CacheInfo summarises the cache for diagnostics.
type CacheInfo struct {
	Count           int        `json:"cached_sheets"`
	OldestFetchedAt *time.Time `json:"oldest_cache,omitempty"`
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
