package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mwiater/gapdash/internal/dashboard"
	"github.com/mwiater/gapdash/internal/distribution"
	"github.com/mwiater/gapdash/internal/logging"
	"github.com/mwiater/gapdash/internal/report"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	st := s.snapshot()
	status := http.StatusOK
	if st.Phase() != dashboard.PhaseReady {
		status = http.StatusServiceUnavailable
	}
	respond(w, r, status, st.Phase().String(), nil)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(r.Context()); err != nil {
		respond(w, r, http.StatusBadGateway, err.Error(), nil)
		return
	}
	respond(w, r, http.StatusOK, "reloaded", nil)
}

// handleReloadForm is the HTML retry button target.
func (s *Server) handleReloadForm(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(r.Context()); err != nil {
		logging.LogWarn("reload failed: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// requireReady rejects API calls until data is loaded and resolves the
// {view} parameter.
func (s *Server) requireReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := s.snapshot()
		if st.Phase() != dashboard.PhaseReady {
			msg := "data is " + st.Phase().String()
			if err := st.Err(); err != nil {
				msg = err.Error()
			}
			respond(w, r, http.StatusServiceUnavailable, msg, nil)
			return
		}
		if _, err := dashboard.ParseView(chi.URLParam(r, "view")); err != nil {
			respond(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestState applies the view path parameter and the query to the loaded
// state.
func (s *Server) requestState(r *http.Request) dashboard.State {
	st := s.snapshot()
	if v, err := dashboard.ParseView(chi.URLParam(r, "view")); err == nil {
		st = st.SwitchView(v)
	}
	q := r.URL.Query()
	if sort := q.Get(paramSort); sort != "" || q.Get(paramDir) != "" {
		q.Set(paramTaskSort, sort)
		q.Set(paramTaskDir, q.Get(paramDir))
		q.Set(paramGroupSort, sort)
		q.Set(paramGroupDir, q.Get(paramDir))
	}
	q.Del(paramView)
	return decodeState(st, q)
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	st := s.requestState(r)
	rows := st.TaskRows()
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskJSON(row))
	}
	respond(w, r, http.StatusOK, "ok", map[string]any{
		"view":  st.View(),
		"sort":  st.TaskSort(),
		"total": len(out),
		"rows":  out,
	})
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	st := s.requestState(r)
	rows := st.GroupRows()
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupJSON(row))
	}
	respond(w, r, http.StatusOK, "ok", map[string]any{
		"view":  st.View(),
		"sort":  st.GroupSort(),
		"total": len(out),
		"rows":  out,
	})
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	st := s.requestState(r)
	respond(w, r, http.StatusOK, "ok", distJSON(st.Distribution(), st.PatternOptions()))
}

func (s *Server) handlePatternChart(w http.ResponseWriter, r *http.Request) {
	st := s.requestState(r)
	opts := distribution.ChartOptions{Format: distribution.FormatSVG}
	contentType := "image/svg+xml"
	if strings.HasSuffix(r.URL.Path, ".png") {
		opts.Format = distribution.FormatPNG
		contentType = "image/png"
	}

	d := st.Distribution()
	w.Header().Set("Content-Type", contentType)
	if err := distribution.Render(w, d, opts); err != nil {
		w.Header().Del("Content-Type")
		if errors.Is(err, distribution.ErrNoData) {
			respond(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}
		respond(w, r, http.StatusInternalServerError, err.Error(), nil)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := s.snapshot()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	switch st.Phase() {
	case dashboard.PhaseFailed:
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = errorPage.Execute(w, st.Err().Error())
		return
	case dashboard.PhaseLoading:
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = loadingPage.Execute(w, nil)
		return
	}

	st = decodeState(st, r.URL.Query())
	if err := report.Render(w, st, report.Options{Link: encodeState}); err != nil {
		logging.LogError("render dashboard: %v", err)
	}
}
