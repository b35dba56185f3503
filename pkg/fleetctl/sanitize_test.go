package fleetctl

import (
	"reflect"
	"testing"
)

func TestRedactMasksPasswordValue(t *testing.T) {
	args := []string{"login", "--email", "a@b.com", "--password", "hunter2", "--context", "default"}
	got := Redact(args)

	want := []string{"login", "--email", "a@b.com", "--password", "******", "--context", "default"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected redacted args: %v", got)
	}
}

func TestRedactDoesNotMutateInput(t *testing.T) {
	args := []string{"--password", "secret"}
	_ = Redact(args)

	if args[1] != "secret" {
		t.Fatalf("input slice was mutated: %v", args)
	}
}

func TestRedactPassthrough(t *testing.T) {
	cases := [][]string{
		{},
		{"get", "hosts", "--json"},
		{"--password"}, // flag without a value
	}
	for _, args := range cases {
		got := Redact(args)
		if !reflect.DeepEqual(got, args) {
			t.Fatalf("expected passthrough for %v, got %v", args, got)
		}
	}
}
