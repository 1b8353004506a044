package dataset

import (
	"context"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/obs"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLFileSource loads a dataset from a YAML file with the same shape as the
// JSON form. YAML integers and floats become numeric ids; quoted or plain
// strings become string ids.
type YAMLFileSource struct {
	Path string
}

func NewYAMLFileSource(path string) *YAMLFileSource {
	return &YAMLFileSource{Path: path}
}

func (s *YAMLFileSource) Load(ctx context.Context) (_ *domain.Dataset, err error) {
	defer obs.Time(ctx, "dataset.yaml.Load")(&err)

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: read %q: %w", s.Path, err)
	}

	ds, err := DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", s.Path, err)
	}
	return ds, nil
}

// DecodeYAML converts YAML to JSON and decodes it through DecodeJSON so both
// formats share one schema and one set of validation rules.
func DecodeYAML(data []byte) (*domain.Dataset, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: parse yaml: %v: %w", err, domain.ErrInvalidDataset)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("decode dataset: convert yaml: %v: %w", err, domain.ErrInvalidDataset)
	}

	return DecodeJSON(raw)
}
