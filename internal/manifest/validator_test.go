package manifest

import (
	"testing"

	"github.com/spf13/afero"
)

func TestValidate_GeneratedBlock(t *testing.T) {
	b, err := NewBlock("hero-banner", Options{Version: "0.1.0"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := b.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  %s (keyword=%s)", issue, issue.Keyword)
		}
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		keyword string
	}{
		{"missing name", `{"title":"X","category":"Primary","acf":{"mode":"edit","renderTemplate":"x.php"}}`, "required"},
		{"bad align", `{"name":"acf/x","title":"X","category":"Primary","align":"huge","acf":{"mode":"edit","renderTemplate":"x.php"}}`, "enum"},
		{"bad mode", `{"name":"acf/x","title":"X","category":"Primary","acf":{"mode":"live","renderTemplate":"x.php"}}`, "enum"},
		{"name without namespace", `{"name":"x","title":"X","category":"Primary","acf":{"mode":"edit","renderTemplate":"x.php"}}`, "pattern"},
		{"anchor not bool", `{"name":"acf/x","title":"X","category":"Primary","acf":{"mode":"edit","renderTemplate":"x.php"},"supports":{"anchor":"yes"}}`, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue %+v has no message", issue)
				}
			}
			if !found {
				t.Errorf("expected an issue with keyword %q, got %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{"name": `)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/b/block.json", []byte(heroBannerJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := ValidateFile(fsys, "/b/block.json")
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %+v", result.Issues)
	}

	if _, err := ValidateFile(fsys, "/b/missing.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
