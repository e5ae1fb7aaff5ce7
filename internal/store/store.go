// Package store gives every page one owned collection object with the
// same load/create/update/remove surface, instead of ad-hoc slice
// handling duplicated across pages. Two implementations: Remote is a
// read-through cache over the REST client, Local keeps client-only
// state for the collections with no backend wiring.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/NirunaShyamal/farm-sub001/internal/api"
)

// ErrNotFound is returned by mutations that name an id the collection
// does not hold.
var ErrNotFound = errors.New("record not found")

// Record is any collection member with a stable identity.
type Record interface {
	RecordID() string
}

// Collection is the per-page record store. Mutation errors always
// propagate to the caller; the view decides how to surface them.
type Collection[T Record] interface {
	// Load replaces the cached collection wholesale, keeping server
	// order.
	Load(ctx context.Context) error
	// All returns the cached records in load order.
	All() []T
	// Create inserts a draft. Identity is assigned by the server
	// (remote) or generated locally (local).
	Create(ctx context.Context, draft T) error
	// Update replaces the full record at id.
	Update(ctx context.Context, id string, record T) error
	// Remove deletes the record at id. The caller is responsible for
	// having confirmed with the user first.
	Remove(ctx context.Context, id string) error
}

// Remote is a collection backed by the REST API. The cache is never
// trusted after a mutation: every create/update/remove re-fetches the
// authoritative collection.
type Remote[T Record] struct {
	client     *api.Client
	collection string
	items      []T
}

// NewRemote builds a remote collection over the named resource path.
func NewRemote[T Record](client *api.Client, collection string) *Remote[T] {
	return &Remote[T]{client: client, collection: collection}
}

func (s *Remote[T]) Load(ctx context.Context) error {
	var items []T
	if err := s.client.List(ctx, s.collection, &items); err != nil {
		return fmt.Errorf("load %s: %w", s.collection, err)
	}
	s.items = items
	return nil
}

func (s *Remote[T]) All() []T { return s.items }

func (s *Remote[T]) Create(ctx context.Context, draft T) error {
	if err := s.client.Create(ctx, s.collection, draft, nil); err != nil {
		return err
	}
	return s.Load(ctx)
}

func (s *Remote[T]) Update(ctx context.Context, id string, record T) error {
	if err := s.client.Update(ctx, s.collection, id, record); err != nil {
		return err
	}
	return s.Load(ctx)
}

func (s *Remote[T]) Remove(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, s.collection, id); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Local is a client-only collection. State lives for the session; Load
// is a no-op beyond keeping whatever is already held.
type Local[T Record] struct {
	items  []T
	withID func(T, string) T
	lastID int
}

// NewLocal builds a local collection seeded with the given records.
// withID returns a copy of the record carrying the assigned identity.
func NewLocal[T Record](seed []T, withID func(T, string) T) *Local[T] {
	s := &Local[T]{withID: withID}
	s.items = append(s.items, seed...)
	for _, r := range seed {
		s.bumpLastID(r.RecordID())
	}
	return s
}

func (s *Local[T]) Load(ctx context.Context) error { return nil }

func (s *Local[T]) All() []T { return s.items }

// Create assigns the next numeric identity. lastID is a high-water
// mark, so ids are never reused after a delete.
func (s *Local[T]) Create(ctx context.Context, draft T) error {
	s.lastID++
	s.items = append(s.items, s.withID(draft, strconv.Itoa(s.lastID)))
	return nil
}

func (s *Local[T]) Update(ctx context.Context, id string, record T) error {
	for i, r := range s.items {
		if r.RecordID() == id {
			s.items[i] = s.withID(record, id)
			return nil
		}
	}
	return fmt.Errorf("update %s: %w", id, ErrNotFound)
}

func (s *Local[T]) Remove(ctx context.Context, id string) error {
	for i, r := range s.items {
		if r.RecordID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %s: %w", id, ErrNotFound)
}

func (s *Local[T]) bumpLastID(id string) {
	if n, err := strconv.Atoi(id); err == nil && n > s.lastID {
		s.lastID = n
	}
}
