package dataset

import (
	"delivery-simulation-service/internal/ports"
	"fmt"
	"path/filepath"
	"strings"
)

// OpenFile picks a file-backed source from the path's extension.
func OpenFile(path string) (ports.DatasetSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return NewJSONFileSource(path), nil
	case ".yaml", ".yml":
		return NewYAMLFileSource(path), nil
	default:
		return nil, fmt.Errorf("open dataset %q: unsupported file extension", path)
	}
}
