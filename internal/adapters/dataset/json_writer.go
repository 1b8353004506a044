package dataset

import (
	"context"
	"delivery-simulation-service/internal/api/dto"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/obs"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFileWriter writes reports as indented JSON files.
type JSONFileWriter struct {
	Path string
}

func NewJSONFileWriter(path string) *JSONFileWriter {
	return &JSONFileWriter{Path: path}
}

func (w *JSONFileWriter) Write(ctx context.Context, report *domain.Report) (err error) {
	defer obs.Time(ctx, "report.json.Write")(&err)

	data, err := dto.MarshalReport(report)
	if err != nil {
		return fmt.Errorf("write report: encode: %w", err)
	}

	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write report: create dir %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %q: %w", w.Path, err)
	}
	return nil
}
