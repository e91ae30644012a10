package spla

import (
	"sync"

	"github.com/sparselinalg/spla/objref"
)

// coreScalar is a single optional byte payload: spec.md §3's scalar has
// no tiling or format conversion, just a present/absent flag and a value.
type coreScalar struct {
	objref.Base

	mu      sync.RWMutex
	present bool
	val     []byte
}

func newCoreScalar() *coreScalar {
	s := &coreScalar{}
	s.Base = objref.New(nil)
	return s
}

func (s *coreScalar) get() ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.val, s.present
}

func (s *coreScalar) set(v []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.val, s.present = v, true
}

func (s *coreScalar) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.val, s.present = nil, false
}
