package patient

import (
	"context"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Service runs every operation as one load-mutate-save cycle against the
// injected store. The mutex is the single critical section around that
// cycle: concurrent requests cannot interleave their writes and lose an
// update inside this process.
type Service struct {
	store    Store
	validate *validator.Validate

	mu sync.Mutex
}

func NewService(store Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// List returns the whole collection keyed by id, derived fields included.
func (s *Service) List(ctx context.Context) (map[string]View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	views := make(map[string]View, len(col))
	for id, a := range col {
		views[id] = NewView(id, a)
	}
	return views, nil
}

// Get returns one record or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		return View{}, err
	}

	a, ok := col[id]
	if !ok {
		return View{}, ErrNotFound
	}
	return NewView(id, a), nil
}

// Sorted returns all records ordered by height, weight or bmi. Ties keep
// ascending-id order: the slice is materialized id-sorted and then stably
// sorted on the requested field.
func (s *Service) Sorted(ctx context.Context, sortBy, order string) ([]View, error) {
	switch sortBy {
	case "height", "weight", "bmi":
	default:
		return nil, ErrInvalidSortField
	}
	switch order {
	case "asc", "desc":
	default:
		return nil, ErrInvalidSortOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(col))
	for id := range col {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	views := make([]View, 0, len(ids))
	for _, id := range ids {
		views = append(views, NewView(id, col[id]))
	}

	key := func(v View) float64 {
		switch sortBy {
		case "height":
			return v.Height
		case "weight":
			return v.Weight
		default:
			return v.BMI
		}
	}
	sort.SliceStable(views, func(i, j int) bool {
		if order == "desc" {
			return key(views[i]) > key(views[j])
		}
		return key(views[i]) < key(views[j])
	})
	return views, nil
}

// Create validates the full record and inserts it, failing with
// ErrAlreadyExists when the id is taken.
func (s *Service) Create(ctx context.Context, p Patient) error {
	if err := s.validate.Struct(p); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	if _, ok := col[p.ID]; ok {
		return ErrAlreadyExists
	}
	col[p.ID] = p.Attributes
	return s.store.Save(ctx, col)
}

// Update merges the provided fields onto the existing record, re-validates
// the merged record against the full schema and persists it. The id is
// immutable; it is taken from the path, never from the payload.
func (s *Service) Update(ctx context.Context, id string, u Update) (View, error) {
	if err := s.validate.Struct(u); err != nil {
		return View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		return View{}, err
	}

	existing, ok := col[id]
	if !ok {
		return View{}, ErrNotFound
	}

	merged := u.Apply(existing)
	if err := s.validate.Struct(Patient{ID: id, Attributes: merged}); err != nil {
		return View{}, err
	}

	col[id] = merged
	if err := s.store.Save(ctx, col); err != nil {
		return View{}, err
	}
	return NewView(id, merged), nil
}

// Delete removes the record or fails with ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	if _, ok := col[id]; !ok {
		return ErrNotFound
	}
	delete(col, id)
	return s.store.Save(ctx, col)
}
