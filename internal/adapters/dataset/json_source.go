package dataset

import (
	"context"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/obs"
	"fmt"
	"os"
)

// JSONFileSource loads a dataset from a JSON file.
type JSONFileSource struct {
	Path string
}

func NewJSONFileSource(path string) *JSONFileSource {
	return &JSONFileSource{Path: path}
}

func (s *JSONFileSource) Load(ctx context.Context) (_ *domain.Dataset, err error) {
	defer obs.Time(ctx, "dataset.json.Load")(&err)

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: read %q: %w", s.Path, err)
	}

	ds, err := DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", s.Path, err)
	}
	return ds, nil
}
