// internal/aggregate/aggregate.go
// Package aggregate projects task-level records onto one row per cancer type.
package aggregate

import (
	"math"
	"strings"

	"github.com/mwiater/gapdash/internal/dataset"
)

// Aggregate groups records by cancer name in first-seen order and averages
// the AUC and the twelve gap metrics of each group. The 111-pattern share is
// computed against the full input. Every numeric output is rounded to three
// decimals. NaN inputs propagate into the affected means.
func Aggregate(records []dataset.TaskRecord) []dataset.GroupedRecord {
	var order []string
	groups := make(map[string][]dataset.TaskRecord)
	for _, rec := range records {
		if _, ok := groups[rec.CancerName]; !ok {
			order = append(order, rec.CancerName)
		}
		groups[rec.CancerName] = append(groups[rec.CancerName], rec)
	}

	out := make([]dataset.GroupedRecord, 0, len(order))
	for _, name := range order {
		tasks := groups[name]
		n := float64(len(tasks))

		g := dataset.GroupedRecord{CancerName: name}
		var aucSum float64
		for _, t := range tasks {
			aucSum += t.MeanAUC
			for _, f := range dataset.GapMetricFields {
				*g.GapMetrics.Ptr(f) += t.GapMetrics.Get(f)
			}
		}
		g.AUC = aucSum / n
		for _, f := range dataset.GapMetricFields {
			p := g.GapMetrics.Ptr(f)
			*p /= n
		}
		g.Pattern111Percentage = Pattern111Percentage(records, name)

		out = append(out, roundRecord(g))
	}
	return out
}

// Pattern111Percentage is the share, in percent, of records for cancerName
// whose trimmed pattern is exactly "111". It filters records itself rather
// than trusting a pre-partitioned group, and returns 0 for an empty group.
func Pattern111Percentage(records []dataset.TaskRecord, cancerName string) float64 {
	var total, hits int
	for _, rec := range records {
		if rec.CancerName != cancerName {
			continue
		}
		total++
		if strings.TrimSpace(rec.Pattern) == dataset.Pattern111 {
			hits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// Round3 rounds v to three decimals, half away from zero. NaN and infinities
// pass through.
func Round3(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*1000) / 1000
}

func roundRecord(g dataset.GroupedRecord) dataset.GroupedRecord {
	g.AUC = Round3(g.AUC)
	for _, f := range dataset.GapMetricFields {
		p := g.GapMetrics.Ptr(f)
		*p = Round3(*p)
	}
	g.Pattern111Percentage = Round3(g.Pattern111Percentage)
	return g
}
