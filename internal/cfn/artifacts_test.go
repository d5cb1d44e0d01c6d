// File: internal/cfn/artifacts_test.go
// Brief: Local template and parameter file loading.

package cfn

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadParameters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "web-params-prod.json")
	content := `[
  {"ParameterKey": "Env", "ParameterValue": "prod"},
  {"ParameterKey": "InstanceType", "ParameterValue": "t3.micro"}
]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	params, err := LoadParameters(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(params) != 2 || params[0].Key != "Env" || params[1].Value != "t3.micro" {
		t.Fatalf("unexpected parameters %+v", params)
	}
}

func TestLoadParametersEmptyPath(t *testing.T) {
	params, err := LoadParameters("")
	if err != nil || params != nil {
		t.Fatalf("empty path must mean no overrides, got %v, %v", params, err)
	}
}

func TestLoadParametersRejectsMissingKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad-params.json")
	if err := os.WriteFile(path, []byte(`[{"ParameterValue": "x"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParameters(path); err == nil {
		t.Fatal("expected an error for a missing ParameterKey")
	}
}

func TestCheckTemplateSize(t *testing.T) {
	if err := CheckTemplateSize(strings.Repeat("a", MaxTemplateBytes)); err != nil {
		t.Fatalf("at-limit template must pass: %v", err)
	}
	if err := CheckTemplateSize(strings.Repeat("a", MaxTemplateBytes+1)); err == nil {
		t.Fatal("over-limit template must fail")
	}
}
