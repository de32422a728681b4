// internal/dataset/parse.go
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mwiater/gapdash/internal/table"
)

// ParseWarning describes a malformed row or cell. Warnings never abort a
// parse; the affected cells are left as NaN (numbers) or "" (text).
type ParseWarning struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// String formats the warning for logs.
func (w ParseWarning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("row=%d: %s", w.Row, w.Message)
	}
	return fmt.Sprintf("row=%d field=%s: %s", w.Row, w.Field, w.Message)
}

// ParseResult is the ordered record sequence read from one CSV file.
type ParseResult struct {
	Records  []TaskRecord
	Warnings []ParseWarning
}

// Parse reads header-addressed CSV text into task records using schema as
// the per-column type directive. Empty lines are skipped. Only failures to
// read the underlying stream are returned as errors.
func Parse(r io.Reader, schema Schema) (*ParseResult, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	res := &ParseResult{}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, known := schema[name]; known {
			if _, dup := index[name]; !dup {
				index[name] = i
			}
		}
	}
	fields := schema.Fields()
	for _, f := range fields {
		if _, ok := index[f]; !ok {
			res.Warnings = append(res.Warnings, ParseWarning{Row: 0, Field: f, Message: "column missing from header"})
		}
	}

	row := 0
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				row++
				res.Warnings = append(res.Warnings, ParseWarning{Row: row, Message: perr.Err.Error()})
				continue
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		if len(rec) != len(header) {
			res.Warnings = append(res.Warnings, ParseWarning{
				Row:     row,
				Message: fmt.Sprintf("expected %d fields, found %d", len(header), len(rec)),
			})
		}

		var task TaskRecord
		for _, f := range fields {
			idx, ok := index[f]
			present := ok && idx < len(rec)
			switch schema[f] {
			case table.KindNumber:
				if !present {
					setNumber(&task, f, math.NaN())
					continue
				}
				v, ok := parseNumber(rec[idx])
				if !ok {
					res.Warnings = append(res.Warnings, ParseWarning{
						Row:     row,
						Field:   f,
						Message: fmt.Sprintf("not a number: %q", rec[idx]),
					})
				}
				setNumber(&task, f, v)
			default:
				if present {
					setText(&task, f, rec[idx])
				}
			}
		}
		res.Records = append(res.Records, task)
	}
	return res, nil
}

// parseNumber converts a numeric cell. Empty or non-numeric cells yield NaN
// and false.
func parseNumber(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN(), false
	}
	return f, true
}
