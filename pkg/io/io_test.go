package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verdantlab/lsys/pkg/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		RunID:       "test-run",
		System:      "algae",
		Engine:      "symbol",
		Iterations:  3,
		Generations: []string{"A", "AB", "ABA", "ABAAB"},
		Cached:      false,
		Duration:    42 * time.Millisecond,
	}
}

func TestWriteReadJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleResult(), &buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if got.System != "algae" || got.Iterations != 3 {
		t.Errorf("round-trip mismatch: got %+v", got)
	}
	if len(got.Generations) != 4 || got.Final() != "ABAAB" {
		t.Errorf("generations mismatch: got %v", got.Generations)
	}
}

func TestWriteReadJSON_ZeroSeed(t *testing.T) {
	seed := uint64(0)
	result := sampleResult()
	result.Seed = &seed

	var buf bytes.Buffer
	if err := WriteJSON(result, &buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"seed": 0`) {
		t.Errorf("explicit zero seed dropped from output:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if got.Seed == nil || *got.Seed != 0 {
		t.Errorf("Seed did not round-trip: got %v", got.Seed)
	}
}

func TestWriteJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleResult(), &buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"system\"") {
		t.Errorf("output not indented:\n%s", buf.String())
	}
}

func TestExportImportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	if err := ExportJSON(sampleResult(), path); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if got.RunID != "test-run" {
		t.Errorf("RunID = %q, want %q", got.RunID, "test-run")
	}
}

func TestImportJSON_MissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadJSON_InvalidJSON(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
