// File: internal/compare/compare_test.go
// Brief: Canonicalized comparison of local artifacts against live stack state.

package compare

import (
	"strings"
	"testing"

	"github.com/example/cfnctl/internal/cfn"
)

const yamlTemplate = `
Resources:
  Bucket:
    Type: AWS::S3::Bucket
    Properties:
      BucketName: mywebsite
`

const jsonTemplate = `{
  "Resources": {
    "Bucket": {
      "Properties": {"BucketName": "mywebsite"},
      "Type": "AWS::S3::Bucket"
    }
  }
}`

func TestTemplatesYAMLAndJSONOfSameDocumentAreInSync(t *testing.T) {
	diff, err := Templates([]byte(yamlTemplate), []byte(jsonTemplate))
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if !diff.InSync {
		t.Fatalf("expected canonical equality, got local-only %v remote-only %v",
			diff.OnlyLocal, diff.OnlyRemote)
	}
	if diff.Unified != "" {
		t.Fatalf("in-sync diff must not render, got %q", diff.Unified)
	}
}

func TestTemplatesReportRealDifference(t *testing.T) {
	changed := strings.Replace(yamlTemplate, "mywebsite", "mywebsite-v2", 1)
	diff, err := Templates([]byte(changed), []byte(jsonTemplate))
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if diff.InSync {
		t.Fatal("expected a difference")
	}
	if len(diff.OnlyLocal) == 0 || !strings.Contains(strings.Join(diff.OnlyLocal, "\n"), "mywebsite-v2") {
		t.Fatalf("local-only block missing the change: %v", diff.OnlyLocal)
	}
	if !strings.Contains(diff.Unified, "+") || !strings.Contains(diff.Unified, "mywebsite-v2") {
		t.Fatalf("unified rendering missing the change:\n%s", diff.Unified)
	}
}

func TestTemplatesRejectUnparseableDocument(t *testing.T) {
	if _, err := Templates([]byte("{unclosed"), []byte(jsonTemplate)); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestParametersDiff(t *testing.T) {
	local := []cfn.Parameter{{Key: "Env", Value: "prod"}, {Key: "Size", Value: "large"}}
	remote := map[string]string{"Env": "prod", "Size": "small"}
	diff := Parameters(local, remote)
	if diff.InSync {
		t.Fatal("expected parameter drift")
	}
	if len(diff.OnlyLocal) != 1 || diff.OnlyLocal[0] != "Size = large" {
		t.Fatalf("unexpected local-only %v", diff.OnlyLocal)
	}
	if len(diff.OnlyRemote) != 1 || diff.OnlyRemote[0] != "Size = small" {
		t.Fatalf("unexpected remote-only %v", diff.OnlyRemote)
	}
}

func TestParametersInSync(t *testing.T) {
	local := []cfn.Parameter{{Key: "Env", Value: "prod"}}
	diff := Parameters(local, map[string]string{"Env": "prod"})
	if !diff.InSync {
		t.Fatalf("expected sync, got %+v", diff)
	}
}
