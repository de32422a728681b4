package server

import (
	"math"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mwiater/gapdash/internal/dataset"
	"github.com/mwiater/gapdash/internal/distribution"
	"github.com/mwiater/gapdash/internal/table"
)

// APIResponse is the envelope of every JSON reply.
type APIResponse struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
	Data   any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, r *http.Request, status int, msg string, data any) {
	render.Status(r, status)
	render.JSON(w, r, APIResponse{Status: status, Msg: msg, Data: data})
}

// number converts NaN and infinities to nil, which JSON encodes as null.
func number(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func taskJSON(r dataset.TaskRecord) map[string]any {
	schema := dataset.TaskSchema()
	out := make(map[string]any, len(schema))
	for _, f := range schema.Fields() {
		if schema[f] == table.KindString {
			out[f] = r.TextField(f)
			continue
		}
		out[f] = number(r.NumberField(f))
	}
	return out
}

func groupJSON(g dataset.GroupedRecord) map[string]any {
	out := map[string]any{
		dataset.FieldCancerName:        g.CancerName,
		dataset.FieldGroupAUC:          number(g.AUC),
		dataset.FieldPattern111Percent: number(g.Pattern111Percentage),
	}
	for _, f := range dataset.GapMetricFields {
		out[f] = number(g.GapMetrics.Get(f))
	}
	return out
}

type bucketJSON struct {
	Pattern    string  `json:"pattern"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type distributionJSON struct {
	Cancer  string       `json:"cancer"`
	Total   int          `json:"total"`
	Buckets []bucketJSON `json:"buckets"`
	Options []string     `json:"options"`
}

func distJSON(d distribution.Distribution, options []string) distributionJSON {
	out := distributionJSON{Cancer: d.Filter, Total: d.Total, Options: options}
	for i, l := range d.Labels {
		out.Buckets = append(out.Buckets, bucketJSON{
			Pattern:    l,
			Count:      d.Counts[i],
			Percentage: d.Percentage(i),
			Color:      distribution.Palette[i],
		})
	}
	return out
}
