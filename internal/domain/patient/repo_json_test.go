package patient

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewJSONStore(path)
	ctx := context.Background()

	col := Collection{
		"P001": {Name: "Ananya", City: "Guwahati", Age: 28, Gender: "female", Height: 1.65, Weight: 90},
	}
	if err := store.Save(ctx, col); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(loaded))
	}
	if loaded["P001"] != col["P001"] {
		t.Errorf("loaded record does not match saved: %+v", loaded["P001"])
	}
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := store.Load(context.Background()); err == nil {
		t.Error("expected error for missing document")
	}
}

func TestJSONStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if _, err := store.Load(context.Background()); err == nil {
		t.Error("expected error for malformed document")
	}
}

func TestJSONStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewJSONStore(path)
	ctx := context.Background()

	if err := store.Save(ctx, SampleCollection()); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, Collection{}); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty collection after overwrite, got %d records", len(loaded))
	}
}

func TestSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	if err := Seed(path, nil); err != nil {
		t.Fatalf("unexpected seed error: %v", err)
	}

	loaded, err := NewJSONStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("seeded document unreadable: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty seeded collection, got %d records", len(loaded))
	}

	// A second seed must not clobber the existing document.
	if err := Seed(path, SampleCollection()); err == nil {
		t.Error("expected error seeding over an existing document")
	}
}
