package fleetctl

import (
	"encoding/json"
	"testing"
)

func mustInterpret(t *testing.T, input string) Value {
	t.Helper()
	v, err := Interpret([]byte(input))
	if err != nil {
		t.Fatalf("interpret failed: %v", err)
	}
	return v
}

func TestNormalizeHostsWrapper(t *testing.T) {
	v := mustInterpret(t, `{"hosts":[{"uuid":"u1","hostname":"h1","platform":"darwin","status":"online"}]}`)
	records := Normalize(v)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ID != "u1" || r.DisplayName != "h1" || r.Platform != "darwin" || r.Status != "online" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestNormalizeDataWrapper(t *testing.T) {
	v := mustInterpret(t, `{"data":[{"uuid":"u1"},{"uuid":"u2"}]}`)
	records := Normalize(v)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].ID != "u2" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestNormalizeSpecLayer(t *testing.T) {
	v := mustInterpret(t, `{"spec":{"hardware_uuid":"X","computer_name":"Y"}}`)
	records := Normalize(v)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ID != "X" || r.DisplayName != "Y" || r.Platform != "" || r.Status != "" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestNormalizeLookupPriority(t *testing.T) {
	// top-level uuid wins over spec.uuid; empty top-level hostname falls
	// through to spec.computer_name
	v := mustInterpret(t, `[{"uuid":"top","hostname":"","spec":{"uuid":"nested","computer_name":"mac"}}]`)
	records := Normalize(v)
	if records[0].ID != "top" {
		t.Fatalf("expected top-level uuid to win, got %q", records[0].ID)
	}
	if records[0].DisplayName != "mac" {
		t.Fatalf("expected fallthrough to spec.computer_name, got %q", records[0].DisplayName)
	}
}

func TestNormalizeMDMStatus(t *testing.T) {
	v := mustInterpret(t, `[{"spec":{"mdm":{"enrollment_status":"enrolled"}}}]`)
	if got := Normalize(v)[0].Status; got != "enrolled" {
		t.Fatalf("expected enrollment_status, got %q", got)
	}
}

func TestNormalizeMalformedElementDegrades(t *testing.T) {
	v := mustInterpret(t, `[{"uuid":"u1"},"just a string",42]`)
	records := Normalize(v)
	if len(records) != 3 {
		t.Fatalf("expected every element kept, got %d", len(records))
	}
	for _, r := range records[1:] {
		if r.ID != "" || r.DisplayName != "" || r.Platform != "" || r.Status != "" {
			t.Fatalf("malformed element should default to empty fields: %+v", r)
		}
	}
}

func TestNormalizeEmptyArray(t *testing.T) {
	records := Normalize(mustInterpret(t, `[]`))
	if len(records) != 0 {
		t.Fatalf("expected empty result, got %d records", len(records))
	}
}

func TestNormalizePreservesOriginalFields(t *testing.T) {
	v := mustInterpret(t, `[{"uuid":"u1","memory":8192}]`)
	out, err := json.Marshal(Normalize(v)[0])
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["id"] != "u1" {
		t.Fatalf("canonical id missing: %v", decoded)
	}
	if decoded["uuid"] != "u1" {
		t.Fatalf("original uuid field dropped: %v", decoded)
	}
	if _, ok := decoded["memory"]; !ok {
		t.Fatalf("original memory field dropped: %v", decoded)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize(mustInterpret(t, `[{"uuid":"u1","hostname":"h1","platform":"darwin","status":"online"}]`))

	out, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	second := Normalize(mustInterpret(t, string(out)))

	if len(first) != len(second) {
		t.Fatalf("record count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.ID != b.ID || a.DisplayName != b.DisplayName || a.Platform != b.Platform || a.Status != b.Status {
			t.Fatalf("canonical fields changed on second pass: %+v vs %+v", a, b)
		}
	}
}
