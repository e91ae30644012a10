// Package objref implements the ref-counted object base (C2): a minimal
// polymorphic container with two counters — strong and weak — providing
// shared ownership with weak-free-list semantics for the core objects
// behind package spla's Matrix, Vector and Scalar handles, which embed Base.
//
// Strong count controls object lifetime; once it reaches zero the payload
// is released. Weak count controls the counter block itself: a WeakRef
// stays resolvable (as a "tombstone" check) as long as weak > 0, even
// after strong has dropped to zero, per spec.md §4.2.
package objref

import "sync/atomic"

// Releaser is called exactly once, when the strong count reaches zero.
type Releaser func()

// Base is embedded by the core object behind every spla Matrix, Vector
// and Scalar handle to get shared-ownership semantics. Zero value is not usable; construct with New.
type Base struct {
	block *block
}

type block struct {
	strong   atomic.Int64
	weak     atomic.Int64
	released atomic.Bool
	release  Releaser
}

// New returns a Base with strong count 1, weak count 0, and release
// called when the strong count is dropped to zero by Release.
func New(release Releaser) Base {
	b := &block{release: release}
	b.strong.Store(1)
	return Base{block: b}
}

// Retain increments the strong count. It returns nothing; a caller that
// wants a second handle copies the value itself.
func (b *Base) Retain() {
	b.block.strong.Add(1)
}

// Release decrements the strong count; at zero it invokes the Releaser
// exactly once. Safe to call from multiple goroutines and safe to call
// more times than Retain was called beyond the initial New (extra calls
// are a programmer error but do not double-release).
func (b *Base) Release() {
	blk := b.block
	if blk.strong.Add(-1) == 0 {
		if blk.released.CompareAndSwap(false, true) {
			if blk.release != nil {
				blk.release()
			}
		}
	}
}

// StrongCount reports the current strong reference count.
func (b *Base) StrongCount() int64 { return b.block.strong.Load() }

// Weak returns a WeakRef to the same underlying block. The block (and its
// weak count) outlives the payload: Resolve reports whether the payload
// is still alive without itself extending its lifetime.
func (b *Base) Weak() WeakRef {
	b.block.weak.Add(1)
	return WeakRef{block: b.block}
}

// WeakRef is a non-owning reference that can observe whether its target's
// strong count has reached zero (a "tombstone" handle, per spec.md §4.2),
// without itself keeping the payload alive. Expression nodes hold their
// argument handles this way: ownership of the Matrix/Vector/Scalar stays
// with the user, per the ownership rules in spec.md §3.
type WeakRef struct {
	block *block
}

// Alive reports whether the strong count is still above zero.
func (w WeakRef) Alive() bool {
	return w.block != nil && w.block.strong.Load() > 0 && !w.block.released.Load()
}

// Release drops this weak reference's hold on the counter block.
func (w WeakRef) Release() {
	if w.block != nil {
		w.block.weak.Add(-1)
	}
}
