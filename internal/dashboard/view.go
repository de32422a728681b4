// internal/dashboard/view.go
// Package dashboard loads both analysis datasets and holds the presentation
// state shared by the terminal, HTML and CLI front ends.
package dashboard

import (
	"fmt"
	"strings"
)

// View names one of the two datasets.
type View string

const (
	ViewBagging   View = "bagging"
	ViewNoBagging View = "no-bagging"
)

// Views lists the views in tab order.
var Views = []View{ViewBagging, ViewNoBagging}

// ParseView accepts a view name case-insensitively. An empty name selects
// ViewBagging.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ViewBagging):
		return ViewBagging, nil
	case string(ViewNoBagging), "nobagging", "features":
		return ViewNoBagging, nil
	}
	return "", fmt.Errorf("unknown view %q (want %q or %q)", s, ViewBagging, ViewNoBagging)
}

// Title is the short human label, e.g. "No Bagging".
func (v View) Title() string {
	if v == ViewNoBagging {
		return "No Bagging"
	}
	return "Bagging"
}

// Tab is the tab caption.
func (v View) Tab() string {
	return v.Title() + " Analysis"
}

// Other returns the opposite view.
func (v View) Other() View {
	if v == ViewNoBagging {
		return ViewBagging
	}
	return ViewNoBagging
}

// datasetName is the name used in load errors and log lines.
func (v View) datasetName() string {
	if v == ViewNoBagging {
		return "features"
	}
	return "bagging"
}

// Sources binds each view to a file path or http(s) URL.
type Sources struct {
	Bagging   string
	NoBagging string
}

// For returns the source bound to v.
func (s Sources) For(v View) string {
	if v == ViewNoBagging {
		return s.NoBagging
	}
	return s.Bagging
}
