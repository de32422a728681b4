package dataset

import (
	"math"

	"github.com/mwiater/gapdash/internal/table"
)

// Schema declares the value kind of every known CSV column. Columns absent
// from the schema are ignored by the parser.
type Schema map[string]table.Kind

// TaskSchema is the per-column type directive for task CSV files. Pattern is
// declared as text so its leading zeros survive.
func TaskSchema() Schema {
	s := Schema{
		FieldCancerName: table.KindString,
		FieldOS:         table.KindString,
		FieldTime:       table.KindNumber,
		FieldAUC:        table.KindNumber,
		FieldPattern:    table.KindString,
	}
	for _, f := range GapMetricFields {
		s[f] = table.KindNumber
	}
	return s
}

// Fields returns the schema's columns in task-record order.
func (s Schema) Fields() []string {
	ordered := append([]string{FieldCancerName, FieldOS, FieldTime, FieldAUC}, GapMetricFields...)
	ordered = append(ordered, FieldPattern)
	out := make([]string, 0, len(s))
	for _, f := range ordered {
		if _, ok := s[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// setText assigns a string column on rec.
func setText(rec *TaskRecord, field, v string) {
	switch field {
	case FieldCancerName:
		rec.CancerName = v
	case FieldOS:
		rec.SurvivalLabel = v
	case FieldPattern:
		rec.Pattern = v
	}
}

// setNumber assigns a numeric column on rec.
func setNumber(rec *TaskRecord, field string, v float64) {
	switch field {
	case FieldTime:
		rec.Time = v
	case FieldAUC:
		rec.MeanAUC = v
	default:
		if p := rec.GapMetrics.Ptr(field); p != nil {
			*p = v
		}
	}
}

// TextField returns a string column of r, or "" for a non-text column.
func (r TaskRecord) TextField(field string) string {
	switch field {
	case FieldCancerName:
		return r.CancerName
	case FieldOS:
		return r.SurvivalLabel
	case FieldPattern:
		return r.Pattern
	}
	return ""
}

// NumberField returns a numeric column of r, or NaN for a non-numeric column.
func (r TaskRecord) NumberField(field string) float64 {
	switch field {
	case FieldTime:
		return r.Time
	case FieldAUC:
		return r.MeanAUC
	}
	if p := r.GapMetrics.Ptr(field); p != nil {
		return *p
	}
	return math.NaN()
}
