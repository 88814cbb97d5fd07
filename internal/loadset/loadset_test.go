package loadset

import (
	"context"
	"fmt"
	"testing"

	"symck/internal/diag"
)

func TestLoadPreservesOrderAndIsolatesFailures(t *testing.T) {
	paths := []string{"a.smv", "bad.smv", "c.smv"}

	results := Load(context.Background(), paths, 2, func(ctx context.Context, path string) (*diag.Bag, error) {
		if path == "bad.smv" {
			return nil, fmt.Errorf("simulated load failure")
		}
		bag := diag.NewBag(4)
		return bag, nil
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, p := range paths {
		if results[i].Path != p {
			t.Fatalf("result %d path = %q, want %q", i, results[i].Path, p)
		}
	}
	if results[1].Err == nil {
		t.Fatal("expected bad.smv to report an error")
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Fatal("expected a.smv and c.smv to succeed despite bad.smv failing")
	}
}

func TestLoadEmpty(t *testing.T) {
	results := Load(context.Background(), nil, 0, func(ctx context.Context, path string) (*diag.Bag, error) {
		t.Fatal("load should never be called for an empty path list")
		return nil, nil
	})
	if results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}
