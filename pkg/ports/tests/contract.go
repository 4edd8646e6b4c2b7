package tests

import (
	"context"
	"testing"

	"github.com/aretw0/panels/pkg/definition"
	"github.com/aretw0/panels/pkg/ports"
)

// SourceContractTest is a reusable test suite that verifies if an adapter complies with ports.Source.
// wantIDs lists the expected widget ids in display order.
func SourceContractTest(t *testing.T, src ports.Source, wantName string, wantIDs []string) {
	t.Helper()

	ctx := context.Background()

	// 1. Load returns the expected name and order
	t.Run("Load_Order", func(t *testing.T) {
		name, specs, err := src.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading: %v", err)
		}
		if name != wantName {
			t.Errorf("name mismatch. got %q, want %q", name, wantName)
		}
		if len(specs) != len(wantIDs) {
			t.Fatalf("expected %d specs, got %d", len(wantIDs), len(specs))
		}
		for i, s := range specs {
			if got := definition.ID(name, i, s); got != wantIDs[i] {
				t.Errorf("spec %d: got id %q, want %q", i, got, wantIDs[i])
			}
		}
	})

	// 2. Every spec builds
	t.Run("Load_Buildable", func(t *testing.T) {
		name, specs, err := src.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading: %v", err)
		}
		if _, err := definition.Entries(name, specs); err != nil {
			t.Errorf("specs do not build: %v", err)
		}
	})

	// 3. Load is repeatable
	t.Run("Load_Idempotent", func(t *testing.T) {
		_, first, err := src.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading: %v", err)
		}
		_, second, err := src.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error reloading: %v", err)
		}
		if len(first) != len(second) {
			t.Errorf("reload changed spec count: %d vs %d", len(first), len(second))
		}
	})
}
