// File: internal/cfn/artifacts.go
// Brief: Local template and parameter file loading.

package cfn

import (
	"encoding/json"
	"fmt"
	"os"
)

// MaxTemplateBytes is the request-body size limit for templates passed
// directly to the service. Larger templates must go through S3, which this
// tool does not do.
const MaxTemplateBytes = 51200

// LoadTemplate reads a local template document.
func LoadTemplate(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return string(raw), nil
}

// CheckTemplateSize rejects templates over the request-body limit before the
// service does, with a clearer message.
func CheckTemplateSize(body string) error {
	if len(body) > MaxTemplateBytes {
		return fmt.Errorf("template is %d bytes, exceeding the %d-byte request limit", len(body), MaxTemplateBytes)
	}
	return nil
}

type parameterEntry struct {
	ParameterKey   string `json:"ParameterKey"`
	ParameterValue string `json:"ParameterValue"`
}

// LoadParameters reads a conventional parameters file: a JSON array of
// {ParameterKey, ParameterValue} objects. An empty path means no overrides.
func LoadParameters(path string) ([]Parameter, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parameters %s: %w", path, err)
	}
	var entries []parameterEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse parameters %s: %w", path, err)
	}
	params := make([]Parameter, 0, len(entries))
	for i, e := range entries {
		if e.ParameterKey == "" {
			return nil, fmt.Errorf("parse parameters %s: entry %d has no ParameterKey", path, i)
		}
		params = append(params, Parameter{Key: e.ParameterKey, Value: e.ParameterValue})
	}
	return params, nil
}
