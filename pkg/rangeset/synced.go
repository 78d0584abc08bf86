package rangeset

import (
	"sync"

	"github.com/henderiw/rangeset/pkg/ranges"
)

// Synced guards a RangeSet shared between goroutines.
type Synced struct {
	m   *sync.RWMutex
	set *RangeSet
}

// NewSynced wraps set, which must no longer be used directly. A nil set
// starts empty.
func NewSynced(set *RangeSet) *Synced {
	if set == nil {
		set = New()
	}
	return &Synced{
		m:   new(sync.RWMutex),
		set: set,
	}
}

func (r *Synced) Add(v interface{}) (bool, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.set.Add(v)
}

func (r *Synced) AddRange(rng ranges.Range) bool {
	r.m.Lock()
	defer r.m.Unlock()
	return r.set.AddRange(rng)
}

func (r *Synced) Remove(v interface{}) bool {
	r.m.Lock()
	defer r.m.Unlock()
	return r.set.Remove(v)
}

func (r *Synced) RemoveRange(from, to interface{}) bool {
	r.m.Lock()
	defer r.m.Unlock()
	return r.set.RemoveRange(from, to)
}

func (r *Synced) Clear() {
	r.m.Lock()
	defer r.m.Unlock()
	r.set.Clear()
}

// Update runs fn with exclusive access to the set.
func (r *Synced) Update(fn func(set *RangeSet) error) error {
	r.m.Lock()
	defer r.m.Unlock()
	return fn(r.set)
}

func (r *Synced) Contains(v interface{}) bool {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.set.Contains(v)
}

func (r *Synced) Size() uint64 {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.set.Size()
}

func (r *Synced) IsEmpty() bool {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.set.IsEmpty()
}

// Snapshot returns a copy of the set that can be read and iterated freely.
func (r *Synced) Snapshot() *RangeSet {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.set.Clone()
}

func (r *Synced) String() string {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.set.String()
}
