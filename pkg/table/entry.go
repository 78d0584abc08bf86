package table

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	ID() int64
	Labels() labels.Set
	String() string
	Equal(e2 Entry) bool
}

type entry struct {
	id     int64
	labels labels.Set
}
type Entries []Entry

func (r entry) ID() int64          { return r.id }
func (r entry) Labels() labels.Set { return r.labels }
func (r entry) String() string     { return fmt.Sprintf("id: %d, labels: %s", r.id, r.labels.String()) }
func (r entry) Equal(e2 Entry) bool {
	return e2 != nil &&
		r.ID() == e2.ID() &&
		r.labels.String() == e2.Labels().String()
}

func NewEntry(id int64, labels labels.Set) Entry {
	return entry{
		id:     id,
		labels: labels,
	}
}
