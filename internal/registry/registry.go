// Package registry maps opaque document ids to generated PDF paths for the
// lifetime of the process. Entries are not persisted: a restart empties the
// registry by contract.
package registry

import "sync"

// Store is a process-wide id -> path map, safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{docs: make(map[string]string)}
}

// Put registers path under id, overwriting any previous entry.
func (s *Store) Put(id, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = path
}

// Get returns the path registered under id.
func (s *Store) Get(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path, ok := s.docs[id]
	return path, ok
}

// Delete removes id from the store. Deleting an absent id is a no-op.
// Callers use this for lazy cleanup when a stale entry's backing file is
// found missing at download time.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
}

// Len reports the number of registered documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
