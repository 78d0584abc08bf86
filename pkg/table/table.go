// Package table keeps labeled ids claimed out of a pool, for example vlan
// ids "1~4094" or a vxlan segment "10000~10999,20000~20999".
package table

import (
	"github.com/cockroachdb/errors"
	"github.com/henderiw/rangeset/pkg/idxtable"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

type Table interface {
	Get(id int64) (Entry, error)
	Claim(id int64, labels labels.Set) error
	ClaimFree(labels labels.Set) (Entry, error)
	ClaimRange(start, size int64, labels labels.Set) (Entries, error)
	Release(id int64) error
	Update(id int64, labels labels.Set) error
	Size() int
	Has(id int64) bool
	IsFree(id int64) bool
	FindFree() (int64, error)
	GetAll() Entries
	GetByLabel(selector labels.Selector) Entries
	// Free returns the ids that can still be claimed.
	Free() *rangeset.RangeSet
}

// New returns a table over the ids of pool, given in the range grammar.
func New(pool string) (Table, error) {
	t, err := idxtable.NewTable[labels.Set](pool, nil, nil)
	if err != nil {
		return nil, err
	}
	return &table{table: t}, nil
}

type table struct {
	table idxtable.Table[labels.Set]
}

func (r *table) Get(id int64) (Entry, error) {
	l, err := r.table.Get(id)
	if err != nil {
		return nil, err
	}
	return NewEntry(id, l), nil
}

func (r *table) Claim(id int64, labels labels.Set) error {
	if err := r.table.Claim(id, labels); err != nil {
		return errors.Wrapf(err, "claim failed")
	}
	return nil
}

func (r *table) ClaimFree(labels labels.Set) (Entry, error) {
	id, err := r.table.ClaimDynamic(labels)
	if err != nil {
		return nil, err
	}
	return NewEntry(id, labels), nil
}

func (r *table) ClaimRange(start, size int64, labels labels.Set) (Entries, error) {
	if err := r.table.ClaimRange(start, size, labels); err != nil {
		return nil, err
	}
	entries := make(Entries, 0, size)
	for id := start; id < start+size; id++ {
		entries = append(entries, NewEntry(id, labels))
	}
	return entries, nil
}

func (r *table) Release(id int64) error {
	return r.table.Release(id)
}

func (r *table) Update(id int64, labels labels.Set) error {
	return r.table.Update(id, labels)
}

func (r *table) Size() int {
	return r.table.Count()
}

func (r *table) Has(id int64) bool {
	return r.table.Has(id)
}

func (r *table) IsFree(id int64) bool {
	return r.table.IsFree(id)
}

func (r *table) FindFree() (int64, error) {
	return r.table.FindFree()
}

func (r *table) GetAll() Entries {
	return r.GetByLabel(labels.Everything())
}

func (r *table) GetByLabel(selector labels.Selector) Entries {
	entries := Entries{}

	iter := r.table.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value()) {
			entries = append(entries, NewEntry(iter.ID(), iter.Value()))
		}
	}
	return entries
}

func (r *table) Free() *rangeset.RangeSet {
	return r.table.Free()
}
