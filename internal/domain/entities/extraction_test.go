package entities

import "testing"

func TestParseModelJSON(t *testing.T) {
	if _, ok := ParseModelJSON(`[1,2]`); ok {
		t.Fatalf("arrays are not estimate objects")
	}
	if _, ok := ParseModelJSON(`{"a":`); ok {
		t.Fatalf("truncated json must not parse")
	}
	got, ok := ParseModelJSON("  {\n  \"a\": 1\n}  ")
	if !ok || string(got) != `{"a":1}` {
		t.Fatalf("unexpected result %s %v", got, ok)
	}
	got, ok = ParseModelJSON("```\n{\"a\":2}\n```")
	if !ok || string(got) != `{"a":2}` {
		t.Fatalf("unexpected fenced result %s %v", got, ok)
	}
}

func TestExtraction_IsStructured(t *testing.T) {
	obj, ok := ParseModelJSON("```json\n{\"Client Name\": \"Bob\"}\n```")
	if !ok {
		t.Fatalf("expected fenced object to parse")
	}
	if !(Extraction{Structured: obj}).IsStructured() {
		t.Fatalf("expected structured extraction")
	}
	if (Extraction{Raw: "no estimate"}).IsStructured() {
		t.Fatalf("raw text must not be structured")
	}
}
