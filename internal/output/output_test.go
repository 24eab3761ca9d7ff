package output

import (
	"bytes"
	"testing"
)

type sample struct {
	Name  string `yaml:"name" json:"name"`
	Count int    `yaml:"count" json:"count"`
}

func capture(t *testing.T, format Format, pretty bool, v interface{}) string {
	t.Helper()
	origFormat, origPretty, origOut := OutputFormat, PrettyOutput, Stdout
	defer func() {
		OutputFormat, PrettyOutput, Stdout = origFormat, origPretty, origOut
	}()

	var buf bytes.Buffer
	OutputFormat, PrettyOutput, Stdout = format, pretty, &buf
	if err := Print(v); err != nil {
		t.Fatalf("print: %v", err)
	}
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	got := capture(t, FormatYAML, false, sample{Name: "a", Count: 2})
	want := "name: a\ncount: 2\n"
	if got != want {
		t.Errorf("yaml output = %q, want %q", got, want)
	}
}

func TestPrintJSON(t *testing.T) {
	got := capture(t, FormatJSON, false, sample{Name: "a", Count: 2})
	want := "{\"name\":\"a\",\"count\":2}\n"
	if got != want {
		t.Errorf("json output = %q, want %q", got, want)
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	got := capture(t, FormatJSON, true, sample{Name: "a", Count: 2})
	want := "{\n  \"name\": \"a\",\n  \"count\": 2\n}\n"
	if got != want {
		t.Errorf("pretty json output = %q, want %q", got, want)
	}
}
