package world

import (
	"fmt"
	"sort"
	"sync"
)

// Store is the single source of truth for all registered entities. It owns
// every entity by ref; Location and Destination fields are weak references
// resolved through it. Refs are allocated from a monotonic counter and are
// never reused while the store lives.
type Store struct {
	mu      sync.RWMutex
	nextRef Ref
	objects map[Ref]Object
}

func NewStore() *Store {
	return &Store{
		nextRef: 1,
		objects: make(map[Ref]Object),
	}
}

// Register allocates a fresh ref for the entity and adds it to the store.
// The entity must not already carry a ref.
func (s *Store) Register(o Object) (Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.Base().Id != Nowhere {
		return Nowhere, fmt.Errorf("entity %q: %w", o.Base().Name, ErrRefInUse)
	}

	ref := s.nextRef
	s.nextRef++
	o.Base().Id = ref
	s.objects[ref] = o
	return ref, nil
}

// Adopt adds an entity that already carries a ref, such as one loaded from
// a database record. The counter is advanced past the adopted ref so later
// registrations never collide.
func (s *Store) Adopt(o Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := o.Base().Id
	if ref <= Nowhere {
		return fmt.Errorf("entity %q: %w", o.Base().Name, ErrBadRef)
	}
	if _, exists := s.objects[ref]; exists {
		return fmt.Errorf("ref #%d: %w", ref, ErrRefInUse)
	}

	s.objects[ref] = o
	if ref >= s.nextRef {
		s.nextRef = ref + 1
	}
	return nil
}

// Get returns the entity at ref, or false if none exists.
func (s *Store) Get(ref Ref) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.objects[ref]
	return o, ok
}

// Resolve returns the entity at ref, or a DanglingRefError if the ref does
// not resolve. Use it when following location/destination references.
func (s *Store) Resolve(ref Ref) (Object, error) {
	o, ok := s.Get(ref)
	if !ok {
		return nil, &DanglingRefError{Ref: ref}
	}
	return o, nil
}

// SetLocation moves the entity at ref into the given container. Location
// changes go through the store so concurrent movers serialize.
func (s *Store) SetLocation(ref, location Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.objects[ref]
	if !ok {
		return &DanglingRefError{Ref: ref}
	}
	if location != Nowhere {
		if _, ok := s.objects[location]; !ok {
			return &DanglingRefError{Ref: location}
		}
	}
	o.Base().Location = location
	return nil
}

// ExitsFrom returns the exits located in the given room, in ref order.
func (s *Store) ExitsFrom(room Ref) []*Exit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exits []*Exit
	for _, o := range s.objects {
		if e, ok := o.(*Exit); ok && e.Location == room {
			exits = append(exits, e)
		}
	}
	sort.Slice(exits, func(i, j int) bool { return exits[i].Id < exits[j].Id })
	return exits
}

// Contents returns the entities located in the given container, in ref
// order.
func (s *Store) Contents(container Ref) []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []Object
	for _, o := range s.objects {
		if o.Base().Location == container {
			found = append(found, o)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Base().Id < found[j].Base().Id })
	return found
}

// Len returns the number of registered entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.objects)
}

// ForEach calls fn for every entity in ref order.
func (s *Store) ForEach(fn func(Object)) {
	s.mu.RLock()
	refs := make([]Ref, 0, len(s.objects))
	for ref := range s.objects {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	objects := make([]Object, len(refs))
	for i, ref := range refs {
		objects[i] = s.objects[ref]
	}
	s.mu.RUnlock()

	for _, o := range objects {
		fn(o)
	}
}
