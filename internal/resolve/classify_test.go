// File: internal/resolve/classify_test.go
// Brief: Classification of a single ambiguous CLI token.

package resolve

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		token string
		want  Kind
	}{
		{"mywebsite-test", KindStack},
		{"vpc", KindStack},
		{"vpc.json", KindTemplate},
		{"mywebsite.yml", KindTemplate},
		{"infra/mywebsite.yaml", KindTemplate},
		{"mywebsite-params-test.json", KindParams},
		{"vpc-params.json", KindParams},
		{"params/web-params-dev.json", KindParams},
		{"notes.txt", KindAmbiguous},
		{"archive.tar.gz", KindAmbiguous},
	}
	for _, tc := range cases {
		if got := Classify(tc.token); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestCanonicalHelpers(t *testing.T) {
	if got := Slug("infra/mywebsite.yml"); got != "mywebsite" {
		t.Fatalf("Slug = %q", got)
	}
	if got := ParamsSlug("mywebsite-params-test.json"); got != "mywebsite" {
		t.Fatalf("ParamsSlug = %q", got)
	}
	if got := StackForParams("mywebsite-params-test.json"); got != "mywebsite-test" {
		t.Fatalf("StackForParams = %q", got)
	}
	if got := StackForParams("vpc-params.json"); got != "vpc" {
		t.Fatalf("StackForParams without env = %q", got)
	}
}
