// internal/distribution/distribution.go
// Package distribution buckets task records by their three-character binary
// pattern and renders the result as a pie chart.
package distribution

import (
	"fmt"
	"sort"

	"github.com/mwiater/gapdash/internal/dataset"
)

// All is the filter value that selects every record.
const All = "all"

// Labels is the fixed pattern universe in ascending binary order.
var Labels = [8]string{"000", "001", "010", "011", "100", "101", "110", "111"}

// Palette is the fill colour of each label, index-aligned with Labels.
var Palette = [8]string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0",
	"#9966FF", "#FF9F40", "#FF6384", "#4BC0C0",
}

// Distribution is the bucketed view of a record sequence.
type Distribution struct {
	Filter string    `json:"filter"`
	Labels [8]string `json:"labels"`
	Counts [8]int    `json:"counts"`
	// Total counts every filtered record, including those whose pattern lies
	// outside Labels, so percentages need not sum to 100.
	Total int `json:"total"`
}

// Bucket counts records whose cancer name equals filter, or every record when
// filter is All. Patterns are matched exactly without trimming.
func Bucket(records []dataset.TaskRecord, filter string) Distribution {
	if filter == "" {
		filter = All
	}
	d := Distribution{Filter: filter, Labels: Labels}
	for _, rec := range records {
		if filter != All && rec.CancerName != filter {
			continue
		}
		d.Total++
		if i := labelIndex(rec.Pattern); i >= 0 {
			d.Counts[i]++
		}
	}
	return d
}

func labelIndex(pattern string) int {
	for i, l := range Labels {
		if l == pattern {
			return i
		}
	}
	return -1
}

// Percentage is the share of bucket i in percent, 0 when Total is 0.
func (d Distribution) Percentage(i int) float64 {
	if d.Total <= 0 || i < 0 || i >= len(d.Counts) {
		return 0
	}
	return float64(d.Counts[i]) / float64(d.Total) * 100
}

// Counted is the number of records that landed in a bucket.
func (d Distribution) Counted() int {
	var n int
	for _, c := range d.Counts {
		n += c
	}
	return n
}

// FormatPercentage renders p with one decimal and a % suffix.
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// GroupKeys returns the sorted distinct cancer names.
func GroupKeys(records []dataset.TaskRecord) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, rec := range records {
		if _, ok := seen[rec.CancerName]; ok {
			continue
		}
		seen[rec.CancerName] = struct{}{}
		keys = append(keys, rec.CancerName)
	}
	sort.Strings(keys)
	return keys
}

// Options is the filter selector content: All followed by GroupKeys.
func Options(records []dataset.TaskRecord) []string {
	return append([]string{All}, GroupKeys(records)...)
}
