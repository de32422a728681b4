package dataset

import (
	"github.com/mwiater/gapdash/internal/table"
)

func gapColumn[R any](field string, get func(R) GapMetrics) table.Column[R] {
	return table.Column[R]{
		Key:    field,
		Label:  field,
		Kind:   table.KindNumber,
		Number: func(r R) float64 { return get(r).Get(field) },
	}
}

// displayedGapFields are the gap metrics shown in both tables. G and
// G_tilda0..2 are parsed and averaged but not displayed.
var displayedGapFields = []string{
	FieldGInd, FieldGMix, FieldGNTInd, FieldGSupInd,
	FieldGUnsupInd, FieldGNTMix, FieldGSupMix, FieldGUnsupMix,
}

// TaskColumns is the column set of the task-level table.
func TaskColumns() table.Columns[TaskRecord] {
	gap := func(r TaskRecord) GapMetrics { return r.GapMetrics }
	cols := table.Columns[TaskRecord]{
		{Key: FieldCancerName, Label: "Cancer Type", Kind: table.KindString, Text: func(r TaskRecord) string { return r.CancerName }},
		{Key: FieldOS, Label: "OS", Kind: table.KindString, Text: func(r TaskRecord) string { return r.SurvivalLabel }},
		{Key: FieldTime, Label: "Time (Years)", Kind: table.KindNumber, Number: func(r TaskRecord) float64 { return r.Time }},
		{Key: FieldAUC, Label: "AUC", Kind: table.KindNumber, Number: func(r TaskRecord) float64 { return r.MeanAUC }},
	}
	for _, f := range displayedGapFields {
		cols = append(cols, gapColumn(f, gap))
	}
	cols = append(cols, table.Column[TaskRecord]{
		Key: FieldPattern, Label: "Pattern", Kind: table.KindString, Text: func(r TaskRecord) string { return r.Pattern },
	})
	return cols
}

// GroupColumns is the column set of the cancer-grouped table.
func GroupColumns() table.Columns[GroupedRecord] {
	gap := func(r GroupedRecord) GapMetrics { return r.GapMetrics }
	cols := table.Columns[GroupedRecord]{
		{Key: FieldCancerName, Label: "Cancer Type", Kind: table.KindString, Text: func(r GroupedRecord) string { return r.CancerName }},
		{Key: FieldGroupAUC, Label: "Avg AUC", Kind: table.KindNumber, Number: func(r GroupedRecord) float64 { return r.AUC }},
	}
	for _, f := range displayedGapFields {
		cols = append(cols, gapColumn(f, gap))
	}
	cols = append(cols, table.Column[GroupedRecord]{
		Key: FieldPattern111Percent, Label: "111 Pattern %", Kind: table.KindNumber,
		Number: func(r GroupedRecord) float64 { return r.Pattern111Percentage },
	})
	return cols
}
