// Package vlantable allocates 802.1Q vlan ids.
package vlantable

import (
	"github.com/cockroachdb/errors"
	"github.com/henderiw/rangeset/pkg/idxtable"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

// Pool holds every id of the 12 bit vlan field.
const Pool = "0~4095"

var ErrReserved = errors.New("reserved vlan")

type VLANTable interface {
	Get(id int64) (labels.Set, error)
	Claim(id int64, d labels.Set) error
	ClaimDynamic(d labels.Set) (int64, error)
	ClaimRange(start, size int64, d labels.Set) error
	ClaimSize(size int64, d labels.Set) error
	Release(id int64) error
	Update(id int64, d labels.Set) error

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)
	Free() *rangeset.RangeSet

	GetAll() map[int64]labels.Set
	GetByLabel(selector labels.Selector) map[int64]labels.Set
}

var initEntries = map[int64]labels.Set{
	0:    map[string]string{"type": "untagged", "status": "reserved"},
	1:    map[string]string{"type": "untagged", "status": "reserved"},
	4095: map[string]string{"type": "untagged", "status": "reserved"},
}

func New() (VLANTable, error) {
	return NewWithPool(Pool)
}

// NewWithPool returns a table restricted to the vlans of pool, for example
// "100~199,300". The reserved vlans of the pool are claimed upfront.
func NewWithPool(pool string) (VLANTable, error) {
	allowed, err := rangeset.Parse(pool)
	if err != nil {
		return nil, err
	}
	outside := allowed.Clone()
	outside.RemoveRange(0, 4095)
	if !outside.IsEmpty() {
		return nil, errors.Wrapf(idxtable.ErrInvalidPool, "vlans %s out of %s", outside, Pool)
	}
	reserved := map[int64]labels.Set{}
	for id, l := range initEntries {
		if allowed.Contains(id) {
			reserved[id] = l
		}
	}

	t, err := idxtable.NewTable[labels.Set](
		pool,
		reserved,
		func(id int64) error {
			switch id {
			case 0:
				return errors.Wrapf(ErrReserved, "VLAN %d is the untagged VLAN, cannot be added to the database", id)
			case 1:
				return errors.Wrapf(ErrReserved, "VLAN %d is the default VLAN, cannot be added to the database", id)
			case 4095:
				return errors.Wrapf(ErrReserved, "VLAN %d is reserved, cannot be added to the database", id)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &vlanTable{
		table: t,
	}, nil
}

type vlanTable struct {
	table idxtable.Table[labels.Set]
}

func (r *vlanTable) Get(id int64) (labels.Set, error) {
	return r.table.Get(id)
}

func (r *vlanTable) Claim(id int64, d labels.Set) error {
	return r.table.Claim(id, d)
}

func (r *vlanTable) ClaimDynamic(d labels.Set) (int64, error) {
	return r.table.ClaimDynamic(d)
}

func (r *vlanTable) ClaimRange(start, size int64, d labels.Set) error {
	return r.table.ClaimRange(start, size, d)
}

func (r *vlanTable) ClaimSize(size int64, d labels.Set) error {
	return r.table.ClaimSize(size, d)
}

func (r *vlanTable) Release(id int64) error {
	return r.table.Release(id)
}

func (r *vlanTable) Update(id int64, d labels.Set) error {
	return r.table.Update(id, d)
}

func (r *vlanTable) Count() int {
	return r.table.Count()
}

func (r *vlanTable) Has(id int64) bool {
	return r.table.Has(id)
}

func (r *vlanTable) IsFree(id int64) bool {
	return r.table.IsFree(id)
}

func (r *vlanTable) FindFree() (int64, error) {
	return r.table.FindFree()
}

func (r *vlanTable) Free() *rangeset.RangeSet {
	return r.table.Free()
}

func (r *vlanTable) GetAll() map[int64]labels.Set {
	return r.table.GetAll()
}

func (r *vlanTable) GetByLabel(selector labels.Selector) map[int64]labels.Set {
	entries := map[int64]labels.Set{}

	iter := r.table.Iterate()

	for iter.Next() {
		if selector.Matches(iter.Value()) {
			entries[iter.ID()] = iter.Value()
		}
	}
	return entries
}
