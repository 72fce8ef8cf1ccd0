package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/panbanda/mood/internal/output"
	"github.com/panbanda/mood/internal/service/analysis"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

func compileSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	sch, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		t.Fatalf("failed to parse schema JSON: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", sch); err != nil {
		t.Fatalf("failed to add schema resource: %v", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		t.Fatalf("failed to compile schema: %v", err)
	}
	return compiled
}

func validateJSON(t *testing.T, schema *jsonschema.Schema, data []byte) error {
	t.Helper()
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	return schema.Validate(inst)
}

func TestJSONReport_ValidAgainstSchema(t *testing.T) {
	schema := compileSchema(t)

	var buf bytes.Buffer
	report := NewReport(sampleAnalysis(), ReportOptions{})
	if err := output.NewWriterFormatter(output.FormatJSON, &buf, false).Output(report); err != nil {
		t.Fatalf("Output() error: %v", err)
	}

	if err := validateJSON(t, schema, buf.Bytes()); err != nil {
		t.Errorf("JSON output does not conform to schema:\n%v\n%s", err, buf.String())
	}
}

func TestJSONReport_AnalyzedSources_ValidAgainstSchema(t *testing.T) {
	schema := compileSchema(t)

	dir := t.TempDir()
	sources := map[string]string{
		"Shape.java":  "package geo;\npublic class Shape {\n  private double area;\n  public double area() { return area; }\n  private void reset() {}\n}\n",
		"Circle.java": "package geo;\npublic class Circle extends Shape {\n  double radius;\n  @Override\n  public double area() { return radius; }\n}\n",
		"Broken.java": "package geo;\npublic class Broken extends {\n",
	}
	var files []string
	for name, content := range sources {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		files = append(files, path)
	}

	result, err := analysis.New().AnalyzeMood(context.Background(), files, analysis.MoodOptions{})
	if err != nil {
		t.Fatalf("AnalyzeMood() error: %v", err)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected the broken file to be skipped, got %+v", result.Skipped)
	}

	var buf bytes.Buffer
	if err := output.NewWriterFormatter(output.FormatJSON, &buf, false).Output(NewReport(result, ReportOptions{})); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if err := validateJSON(t, schema, buf.Bytes()); err != nil {
		t.Errorf("JSON output does not conform to schema:\n%v\n%s", err, buf.String())
	}
}

func TestSchema_RejectsOutOfRangeRatio(t *testing.T) {
	schema := compileSchema(t)

	doc := `{
  "generated_at": "2024-01-01T00:00:00Z",
  "metrics": {
    "mhf": 1.5, "ahf": null, "mif": 0, "aif": 0, "pof": 0,
    "counts": {
      "public_methods": 0, "private_methods": 0, "public_fields": 0, "private_fields": 0,
      "inherited_methods": 0, "inherited_fields": 0, "overridden_methods": 0,
      "available_methods": 0, "available_fields": 0, "override_opportunities": 0
    }
  },
  "classes": [],
  "summary": {
    "total_files": 0, "parsed_files": 0, "skipped_files": 0, "total_classes": 0, "roots": 0,
    "unresolved_parents": 0, "duplicate_classes": 0, "max_dit": 0, "max_noc": 0
  }
}`
	if err := validateJSON(t, schema, []byte(doc)); err == nil {
		t.Error("schema should reject mhf > 1")
	}
}
