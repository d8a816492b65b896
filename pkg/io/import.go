package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/verdantlab/lsys/pkg/pipeline"
)

// ReadJSON decodes a derivation result from r. It accepts exactly the
// format produced by [WriteJSON].
func ReadJSON(r io.Reader) (*pipeline.Result, error) {
	var result pipeline.Result
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &result, nil
}

// ImportJSON reads a derivation result from the file at path.
func ImportJSON(path string) (*pipeline.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	result, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return result, nil
}
