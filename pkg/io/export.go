// Package io reads and writes derivation results as JSON.
//
// The format is the JSON shape of [pipeline.Result] with indentation, so
// exported files are both machine round-trippable and comfortable to read:
//
//	{
//	  "run_id": "5a2f...",
//	  "system": "algae",
//	  "engine": "symbol",
//	  "iterations": 3,
//	  "generations": ["A", "AB", "ABA", "ABAAB"],
//	  ...
//	}
//
// Exported results are the hand-off point between `lsys derive --output`
// and any downstream tooling; [ImportJSON] round-trips them.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/verdantlab/lsys/pkg/pipeline"
)

// WriteJSON encodes a derivation result as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(result *pipeline.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a derivation result to the file at path, creating or
// truncating it.
func ExportJSON(result *pipeline.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(result, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
