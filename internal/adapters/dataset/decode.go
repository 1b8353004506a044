package dataset

import (
	"bytes"
	"delivery-simulation-service/internal/api/dto"
	"delivery-simulation-service/internal/domain"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/dataset.schema.json
var schemaJSON string

var datasetSchema = jsonschema.MustCompileString("dataset.schema.json", schemaJSON)

// DecodeJSON validates raw dataset JSON against the dataset schema and
// converts it into a fresh Dataset.
func DecodeJSON(data []byte) (*domain.Dataset, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset: parse json: %v: %w", err, domain.ErrInvalidDataset)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("decode dataset: trailing data after dataset object: %w", domain.ErrInvalidDataset)
	}

	if err := datasetSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %v: %w", err, domain.ErrInvalidDataset)
	}

	var req dto.DatasetRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode dataset: %v: %w", err, domain.ErrInvalidDataset)
	}

	ds, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}
