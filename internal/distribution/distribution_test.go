package distribution

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mwiater/gapdash/internal/dataset"
)

func rec(name, pattern string) dataset.TaskRecord {
	return dataset.TaskRecord{CancerName: name, Pattern: pattern}
}

func TestBucketAll(t *testing.T) {
	records := []dataset.TaskRecord{rec("Lung", "111"), rec("Lung", "010"), rec("Skin", "111")}
	d := Bucket(records, All)
	if d.Total != 3 {
		t.Fatalf("total = %d, want 3", d.Total)
	}
	want := map[string]int{"111": 2, "010": 1}
	for i, l := range d.Labels {
		if d.Counts[i] != want[l] {
			t.Fatalf("count[%s] = %d, want %d", l, d.Counts[i], want[l])
		}
	}
	if d.Labels != Labels {
		t.Fatalf("labels = %v", d.Labels)
	}
}

func TestBucketFilterAndOutOfUniverse(t *testing.T) {
	records := []dataset.TaskRecord{
		rec("Lung", "111"),
		rec("Lung", " 111"),
		rec("Lung", "11"),
		rec("Lung", "000"),
		rec("Skin", "000"),
	}
	d := Bucket(records, "Lung")
	if d.Total != 4 {
		t.Fatalf("total = %d, want 4", d.Total)
	}
	if d.Counted() != 2 {
		t.Fatalf("counted = %d, want 2 (padded and short patterns dropped)", d.Counted())
	}
	if d.Counts[7] != 1 || d.Counts[0] != 1 {
		t.Fatalf("counts = %v", d.Counts)
	}
	if got := d.Percentage(7); got != 25 {
		t.Fatalf("percentage(111) = %v, want 25", got)
	}
}

func TestBucketEmptyFilterMeansAll(t *testing.T) {
	d := Bucket([]dataset.TaskRecord{rec("A", "001")}, "")
	if d.Filter != All || d.Total != 1 {
		t.Fatalf("got %+v", d)
	}
}

func TestPercentageZeroTotal(t *testing.T) {
	d := Bucket(nil, "Nope")
	for i := range d.Labels {
		if d.Percentage(i) != 0 {
			t.Fatalf("percentage(%d) = %v", i, d.Percentage(i))
		}
	}
	if d.Percentage(-1) != 0 || d.Percentage(8) != 0 {
		t.Fatalf("out-of-range index should be 0")
	}
}

func TestGroupKeysAndOptions(t *testing.T) {
	records := []dataset.TaskRecord{rec("Skin", ""), rec("Brain", ""), rec("Skin", ""), rec("Lung", "")}
	keys := GroupKeys(records)
	if strings.Join(keys, ",") != "Brain,Lung,Skin" {
		t.Fatalf("keys = %v", keys)
	}
	opts := Options(records)
	if opts[0] != All || len(opts) != 4 {
		t.Fatalf("options = %v", opts)
	}
}

func TestLegendLabel(t *testing.T) {
	records := []dataset.TaskRecord{rec("A", "011"), rec("A", "011"), rec("A", "011"), rec("A", "000"),
		rec("A", "000"), rec("A", "000"), rec("A", "000")}
	d := Bucket(records, All)
	if got := d.LegendLabel(3); got != "Pattern 011: 3 (42.9%)" {
		t.Fatalf("label = %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	d := Bucket([]dataset.TaskRecord{rec("Lung", "111"), rec("Lung", "010")}, All)
	var buf bytes.Buffer
	if err := Render(&buf, d, ChartOptions{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("expected svg output")
	}
}

func TestRenderNoData(t *testing.T) {
	d := Bucket([]dataset.TaskRecord{rec("Lung", "xyz")}, All)
	var buf bytes.Buffer
	if err := Render(&buf, d, ChartOptions{Format: FormatPNG}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
