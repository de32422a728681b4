// internal/dataset/record.go
// Package dataset holds the task-level and grouped record types of the gap
// analysis, the CSV schema that produces them, and the fetcher that reads
// the raw files.
package dataset

// CSV header names. The AUC column carries an embedded space.
const (
	FieldCancerName = "cancer_name"
	FieldOS         = "OS"
	FieldTime       = "time"
	FieldAUC        = "average A_Auc"
	FieldG          = "G"
	FieldGTilda0    = "G_tilda0"
	FieldGTilda1    = "G_tilda1"
	FieldGTilda2    = "G_tilda2"
	FieldGInd       = "G_ind"
	FieldGMix       = "G_mix"
	FieldGNTInd     = "G_NT_ind"
	FieldGSupInd    = "G_Sup_ind"
	FieldGUnsupInd  = "G_Unsup_ind"
	FieldGNTMix     = "G_NT_mix"
	FieldGSupMix    = "G_Sup_mix"
	FieldGUnsupMix  = "G_Unsup_mix"
	FieldPattern    = "Pattern"
)

// Grouped-only field names.
const (
	FieldGroupAUC          = "A_Auc"
	FieldPattern111Percent = "pattern_111_percentage"
)

// Pattern111 is the all-ones pattern whose share is reported per group.
const Pattern111 = "111"

// GapMetrics holds the twelve gap metrics carried per task and averaged per
// group.
type GapMetrics struct {
	G         float64 `json:"G"`
	GTilda0   float64 `json:"G_tilda0"`
	GTilda1   float64 `json:"G_tilda1"`
	GTilda2   float64 `json:"G_tilda2"`
	GInd      float64 `json:"G_ind"`
	GMix      float64 `json:"G_mix"`
	GNTInd    float64 `json:"G_NT_ind"`
	GSupInd   float64 `json:"G_Sup_ind"`
	GUnsupInd float64 `json:"G_Unsup_ind"`
	GNTMix    float64 `json:"G_NT_mix"`
	GSupMix   float64 `json:"G_Sup_mix"`
	GUnsupMix float64 `json:"G_Unsup_mix"`
}

// GapMetricFields lists the gap metric header names in canonical order.
var GapMetricFields = []string{
	FieldG, FieldGTilda0, FieldGTilda1, FieldGTilda2,
	FieldGInd, FieldGMix, FieldGNTInd, FieldGSupInd,
	FieldGUnsupInd, FieldGNTMix, FieldGSupMix, FieldGUnsupMix,
}

// Ptr returns a pointer to the metric named field, or nil for an unknown name.
func (g *GapMetrics) Ptr(field string) *float64 {
	switch field {
	case FieldG:
		return &g.G
	case FieldGTilda0:
		return &g.GTilda0
	case FieldGTilda1:
		return &g.GTilda1
	case FieldGTilda2:
		return &g.GTilda2
	case FieldGInd:
		return &g.GInd
	case FieldGMix:
		return &g.GMix
	case FieldGNTInd:
		return &g.GNTInd
	case FieldGSupInd:
		return &g.GSupInd
	case FieldGUnsupInd:
		return &g.GUnsupInd
	case FieldGNTMix:
		return &g.GNTMix
	case FieldGSupMix:
		return &g.GSupMix
	case FieldGUnsupMix:
		return &g.GUnsupMix
	}
	return nil
}

// Get returns the metric named field. Unknown names return 0.
func (g GapMetrics) Get(field string) float64 {
	if p := g.Ptr(field); p != nil {
		return *p
	}
	return 0
}

// TaskRecord is one model-evaluation task row.
type TaskRecord struct {
	CancerName    string  `json:"cancer_name"`
	SurvivalLabel string  `json:"OS"`
	Time          float64 `json:"time"`
	MeanAUC       float64 `json:"average A_Auc"`
	GapMetrics
	// Pattern is kept as text; "011" and "11" are different patterns.
	Pattern string `json:"Pattern"`
}

// GroupedRecord is the per-cancer-type projection of a task sequence. All
// numeric fields are rounded to three decimals.
type GroupedRecord struct {
	CancerName string  `json:"cancer_name"`
	AUC        float64 `json:"A_Auc"`
	GapMetrics
	Pattern111Percentage float64 `json:"pattern_111_percentage"`
}
