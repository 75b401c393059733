package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	ts := httptest.NewServer(NewServer(dir).Handler())
	t.Cleanup(ts.Close)
	return ts, dir
}

func writeReportFile(t *testing.T, dir, source, body string) {
	t.Helper()
	path := filepath.Join(dir, source+"_report.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestServer_Health(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status body = %v", body)
	}
}

func TestServer_ListReports(t *testing.T) {
	ts, dir := newTestServer(t)
	writeReportFile(t, dir, "uniform", `{"source":"uniform"}`)
	writeReportFile(t, dir, "simple", `{"source":"simple"}`)
	// Other artifacts in the directory are not reports.
	if err := os.WriteFile(filepath.Join(dir, "uniform_frequency.csv"), []byte("Value\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := http.Get(ts.URL + "/reports")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var body struct {
		Reports []string `json:"reports"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Reports) != 2 {
		t.Fatalf("reports = %v, want exactly the two json reports", body.Reports)
	}
}

func TestServer_GetReport(t *testing.T) {
	ts, dir := newTestServer(t)
	writeReportFile(t, dir, "uniform", `{"source":"uniform","range_n":8}`)

	res, err := http.Get(ts.URL + "/reports/uniform")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["source"] != "uniform" {
		t.Errorf("body = %v", body)
	}
}

func TestServer_GetReportNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/reports/missing")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
}

func TestServer_GetReportRejectsTraversal(t *testing.T) {
	ts, dir := newTestServer(t)
	writeReportFile(t, dir, "uniform", `{}`)

	res, err := http.Get(ts.URL + "/reports/..%2F..%2Fetc")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}
