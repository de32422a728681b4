package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/mwiater/gapdash/internal/table"
)

const sampleHeader = "cancer_name,OS,time,average A_Auc,G,G_tilda0,G_tilda1,G_tilda2,G_ind,G_mix,G_NT_ind,G_Sup_ind,G_Unsup_ind,G_NT_mix,G_Sup_mix,G_Unsup_mix,Pattern"

// TestParseKeepsPatternAsText verifies that the Pattern column is never
// numerically coerced, so leading zeros survive.
func TestParseKeepsPatternAsText(t *testing.T) {
	csv := sampleHeader + "\n" +
		"Lung,OS,3,0.71,0.1,0.2,0.3,0.4,0.5,0.6,0.7,0.8,0.9,1.0,1.1,1.2,011\n" +
		"\n" +
		"Skin,DSS,5,0.64,1,2,3,4,5,6,7,8,9,10,11,12,111\n"

	res, err := Parse(strings.NewReader(csv), TaskSchema())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2 (empty line skipped)", len(res.Records))
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}

	lung := res.Records[0]
	if lung.Pattern != "011" {
		t.Fatalf("pattern = %q, want %q", lung.Pattern, "011")
	}
	if lung.CancerName != "Lung" || lung.SurvivalLabel != "OS" {
		t.Fatalf("text fields = %+v", lung)
	}
	if lung.Time != 3 || lung.MeanAUC != 0.71 {
		t.Fatalf("time/auc = %v/%v", lung.Time, lung.MeanAUC)
	}
	if lung.G != 0.1 || lung.GTilda2 != 0.4 || lung.GUnsupMix != 1.2 {
		t.Fatalf("gap metrics = %+v", lung.GapMetrics)
	}
	if res.Records[1].GSupMix != 11 {
		t.Fatalf("G_Sup_mix = %v, want 11", res.Records[1].GSupMix)
	}
}

func TestParseNonNumericBecomesNaNWithWarning(t *testing.T) {
	csv := sampleHeader + "\n" +
		"Lung,OS,3,oops,0.1,0.2,0.3,0.4,,0.6,0.7,0.8,0.9,1.0,1.1,1.2,111\n"

	res, err := Parse(strings.NewReader(csv), TaskSchema())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec := res.Records[0]
	if !math.IsNaN(rec.MeanAUC) {
		t.Fatalf("AUC = %v, want NaN", rec.MeanAUC)
	}
	if !math.IsNaN(rec.GInd) {
		t.Fatalf("G_ind = %v, want NaN", rec.GInd)
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", res.Warnings)
	}
	if res.Warnings[0].Field != FieldAUC || res.Warnings[0].Row != 1 {
		t.Fatalf("first warning = %+v", res.Warnings[0])
	}
	if !strings.Contains(res.Warnings[0].String(), "field=average A_Auc") {
		t.Fatalf("warning string = %q", res.Warnings[0].String())
	}
}

func TestParseShortRowAndMissingColumn(t *testing.T) {
	csv := "cancer_name,time,Pattern,extra\n" +
		"Lung,2,101,x\n" +
		"Skin\n"

	res, err := Parse(strings.NewReader(csv), TaskSchema())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d", len(res.Records))
	}
	if res.Records[0].Pattern != "101" || res.Records[0].Time != 2 {
		t.Fatalf("first = %+v", res.Records[0])
	}
	if !math.IsNaN(res.Records[0].G) {
		t.Fatalf("missing column should be NaN, got %v", res.Records[0].G)
	}
	skin := res.Records[1]
	if skin.CancerName != "Skin" || skin.Pattern != "" || !math.IsNaN(skin.Time) {
		t.Fatalf("short row = %+v", skin)
	}

	var missing, short int
	for _, w := range res.Warnings {
		switch {
		case w.Row == 0 && w.Message == "column missing from header":
			missing++
		case w.Row == 2 && strings.HasPrefix(w.Message, "expected 4 fields"):
			short++
		}
	}
	// OS, average A_Auc and twelve gap metrics are absent.
	if missing != 14 {
		t.Fatalf("missing-column warnings = %d, want 14", missing)
	}
	if short != 1 {
		t.Fatalf("short-row warnings = %d, want 1", short)
	}
}

func TestParseEmptyInput(t *testing.T) {
	res, err := Parse(strings.NewReader(""), TaskSchema())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Records) != 0 || len(res.Warnings) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestParseHeaderWithBOMAndSpaces(t *testing.T) {
	csv := "\ufeffcancer_name , Pattern\nLung,001\n"
	res, err := Parse(strings.NewReader(csv), Schema{FieldCancerName: table.KindString, FieldPattern: table.KindString})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Records[0].CancerName != "Lung" || res.Records[0].Pattern != "001" {
		t.Fatalf("record = %+v", res.Records[0])
	}
}

func TestSchemaFieldsOrder(t *testing.T) {
	fields := TaskSchema().Fields()
	if len(fields) != 17 {
		t.Fatalf("fields = %d, want 17", len(fields))
	}
	if fields[0] != FieldCancerName || fields[3] != FieldAUC || fields[16] != FieldPattern {
		t.Fatalf("unexpected order: %v", fields)
	}
}

func TestTaskRecordFieldAccess(t *testing.T) {
	rec := TaskRecord{CancerName: "Lung", SurvivalLabel: "OS", Time: 3, MeanAUC: 0.7, Pattern: "011"}
	rec.GSupMix = 0.25
	if rec.TextField(FieldPattern) != "011" || rec.TextField(FieldTime) != "" {
		t.Fatalf("TextField mismatch")
	}
	if rec.NumberField(FieldAUC) != 0.7 || rec.NumberField(FieldGSupMix) != 0.25 {
		t.Fatalf("NumberField mismatch")
	}
	if !math.IsNaN(rec.NumberField(FieldCancerName)) {
		t.Fatalf("text column should read as NaN")
	}
}
