package patient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// jsonStore keeps the collection in one flat JSON document on disk. Every
// Load reads and parses the whole file; every Save overwrites it in place.
// A missing or malformed document is a storage error and propagates to the
// caller as a server error.
type jsonStore struct {
	path string
}

func NewJSONStore(path string) Store {
	return &jsonStore{path: path}
}

func (s *jsonStore) Load(_ context.Context) (Collection, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", s.path, err)
	}

	col := Collection{}
	if err := json.Unmarshal(raw, &col); err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", s.path, err)
	}
	return col, nil
}

func (s *jsonStore) Save(_ context.Context, col Collection) error {
	raw, err := json.Marshal(col)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	return nil
}

// Seed writes a starter document at path unless one already exists.
func Seed(path string, col Collection) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("collection %s already exists", path)
	}
	if col == nil {
		col = Collection{}
	}
	raw, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", path, err)
	}
	return nil
}

// SampleCollection returns a few records for seeding a development data file.
func SampleCollection() Collection {
	return Collection{
		"P001": {Name: "Ananya Verma", City: "Guwahati", Age: 28, Gender: "female", Height: 1.65, Weight: 90.0},
		"P002": {Name: "Ravi Mehta", City: "Mumbai", Age: 35, Gender: "male", Height: 1.75, Weight: 70.0},
		"P003": {Name: "Sneha Kulkarni", City: "Pune", Age: 22, Gender: "female", Height: 1.60, Weight: 45.0},
	}
}
