package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/gapdash/internal/dashboard"
	"github.com/mwiater/gapdash/internal/dataset"
)

const csvHeader = "cancer_name,OS,time,average A_Auc,G,G_tilda0,G_tilda1,G_tilda2,G_ind,G_mix,G_NT_ind,G_Sup_ind,G_Unsup_ind,G_NT_mix,G_Sup_mix,G_Unsup_mix,Pattern\n"

const baggingCSV = csvHeader +
	"Lung,OS,3,0.7,0,0,0,0,0.1,0,0,0,0,0,0,0,111\n" +
	"Lung,OS,5,,0,0,0,0,0.3,0,0,0,0,0,0,0,010\n" +
	"Skin,OS,3,0.9,0,0,0,0,0.2,0,0,0,0,0,0,0,111\n"

const featuresCSV = csvHeader +
	"Brain,OS,1,0.6,0,0,0,0,0.5,0,0,0,0,0,0,0,000\n"

func newTestServer(t *testing.T, files map[string]string) (*Server, *httptest.Server) {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	s := New(Config{
		Fetcher: dataset.NewSourceFetcher(nil),
		Sources: dashboard.Sources{
			Bagging:   filepath.Join(dir, "bagging_analysis.csv"),
			NoBagging: filepath.Join(dir, "features_analysis.csv"),
		},
		DataDir: dir,
	})
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func getJSON(t *testing.T, url string) (int, APIResponse, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	var raw struct {
		Status int            `json:"status"`
		Msg    string         `json:"msg"`
		Data   map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode, APIResponse{Status: raw.Status, Msg: raw.Msg}, raw.Data
}

func TestAPITasksAndGroups(t *testing.T) {
	s, ts := newTestServer(t, map[string]string{
		"bagging_analysis.csv":  baggingCSV,
		"features_analysis.csv": featuresCSV,
	})
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	code, _, data := getJSON(t, ts.URL+"/api/bagging/tasks?sort=G_ind&dir=desc")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	rows := data["rows"].([]any)
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	first := rows[0].(map[string]any)
	if first["G_ind"].(float64) != 0.3 {
		t.Fatalf("first row = %v", first)
	}
	// The missing AUC cell is NaN and encodes as null.
	if first["average A_Auc"] != nil {
		t.Fatalf("expected null AUC, got %v", first["average A_Auc"])
	}
	if first["Pattern"] != "010" {
		t.Fatalf("pattern = %v", first["Pattern"])
	}

	_, _, data = getJSON(t, ts.URL+"/api/bagging/groups")
	groups := data["rows"].([]any)
	lung := groups[0].(map[string]any)
	if lung["cancer_name"] != "Lung" || lung["pattern_111_percentage"].(float64) != 50 {
		t.Fatalf("lung group = %v", lung)
	}
	if lung["A_Auc"] != nil {
		t.Fatalf("NaN mean should be null, got %v", lung["A_Auc"])
	}

	_, _, data = getJSON(t, ts.URL+"/api/no-bagging/tasks")
	if data["total"].(float64) != 1 {
		t.Fatalf("no-bagging total = %v", data["total"])
	}

	code, _, _ = getJSON(t, ts.URL+"/api/sideways/tasks")
	if code != http.StatusNotFound {
		t.Fatalf("unknown view status = %d", code)
	}
}

func TestAPIPatterns(t *testing.T) {
	s, ts := newTestServer(t, map[string]string{
		"bagging_analysis.csv":  baggingCSV,
		"features_analysis.csv": featuresCSV,
	})
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	_, _, data := getJSON(t, ts.URL+"/api/bagging/patterns?cancer=Lung")
	if data["total"].(float64) != 2 || data["cancer"] != "Lung" {
		t.Fatalf("patterns = %v", data)
	}
	buckets := data["buckets"].([]any)
	last := buckets[7].(map[string]any)
	if last["pattern"] != "111" || last["percentage"].(float64) != 50 {
		t.Fatalf("111 bucket = %v", last)
	}

	resp, err := http.Get(ts.URL + "/api/bagging/patterns.svg")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "<svg") {
		t.Fatalf("svg status=%d body=%.80s", resp.StatusCode, body)
	}

	code, _, _ := getJSON(t, ts.URL+"/api/bagging/patterns.svg?cancer=Nobody")
	if code != http.StatusNotFound {
		t.Fatalf("empty chart status = %d", code)
	}
}

// TestIndexFailureAndRetry checks that a missing dataset yields the error
// page and that the retry endpoint recovers once the file exists.
func TestIndexFailureAndRetry(t *testing.T) {
	s, ts := newTestServer(t, map[string]string{"bagging_analysis.csv": baggingCSV})
	if err := s.Reload(context.Background()); err == nil {
		t.Fatalf("expected load failure")
	}

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable || !strings.Contains(string(body), "failed to load features data") {
		t.Fatalf("status=%d body=%s", resp.StatusCode, body)
	}

	code, msg, _ := getJSON(t, ts.URL+"/api/bagging/tasks")
	if code != http.StatusServiceUnavailable || !strings.Contains(msg.Msg, "features") {
		t.Fatalf("api while failed: %d %q", code, msg.Msg)
	}

	if err := os.WriteFile(filepath.Join(filepath.Dir(s.cfg.Sources.Bagging), "features_analysis.csv"), []byte(featuresCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	resp, err = http.Post(ts.URL+"/api/reload", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reload status = %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/?view=no-bagging")
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "Task-Level Data (No Bagging)") {
		t.Fatalf("index status=%d", resp.StatusCode)
	}
}

func TestStaticDataAndHealth(t *testing.T) {
	_, ts := newTestServer(t, map[string]string{"bagging_analysis.csv": baggingCSV})

	resp, err := http.Get(ts.URL + "/data/bagging_analysis.csv")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(string(body), "cancer_name,") {
		t.Fatalf("static status=%d", resp.StatusCode)
	}

	code, msg, _ := getJSON(t, ts.URL+"/health")
	if code != http.StatusServiceUnavailable || msg.Msg != "loading" {
		t.Fatalf("health = %d %q", code, msg.Msg)
	}
}

func TestStateQueryRoundTrip(t *testing.T) {
	s := dashboard.NewState(dashboard.ViewBagging).SortTasks("G_mix").SortGroups("cancer_name").FilterPatterns("Lung")
	s = s.SwitchView(dashboard.ViewNoBagging)
	link := encodeState(s)
	req := httptest.NewRequest(http.MethodGet, link, nil)
	got := decodeState(dashboard.NewState(dashboard.ViewBagging), req.URL.Query())
	if got.View() != s.View() || got.TaskSort() != s.TaskSort() || got.GroupSort() != s.GroupSort() || got.PatternFilter() != "Lung" {
		t.Fatalf("round trip mismatch: %s", link)
	}
}
