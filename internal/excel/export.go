package excel

import (
	"encoding/json"
	"fmt"

	"github.com/example/kotoba/pkg/models"
)

// ExportJSON serializes a vocabulary set as pretty-printed JSON keyed
// by "dayN", the shape used for downloads and debugging dumps.
func ExportJSON(set models.VocabularySet) ([]byte, error) {
	out := make(map[string]models.Day, len(set))
	for n, day := range set {
		out[fmt.Sprintf("day%d", n)] = day
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export vocabulary set: %w", err)
	}
	return data, nil
}
