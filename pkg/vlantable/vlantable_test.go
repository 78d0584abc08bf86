package vlantable

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/rangeset/pkg/idxtable"
	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		pool              string
		initEntries       map[int64]labels.Set
		newSuccessEntries map[int64]labels.Set
		newFailedEntries  map[int64]labels.Set
		expectedEntries   int
		expectedFree      string
	}{

		"Normal": {
			pool:        Pool,
			initEntries: initEntries,
			newSuccessEntries: map[int64]labels.Set{
				10: map[string]string{},
				11: map[string]string{},
			},
			newFailedEntries: map[int64]labels.Set{
				5000: map[string]string{},
				1:    map[string]string{},
			},
			expectedEntries: 5,
			expectedFree:    "2~9,12~4094",
		},
		"Restricted": {
			pool: "1~10,100",
			initEntries: map[int64]labels.Set{
				1: initEntries[1],
			},
			newSuccessEntries: map[int64]labels.Set{
				100: map[string]string{},
			},
			newFailedEntries: map[int64]labels.Set{
				11: map[string]string{},
			},
			expectedEntries: 2,
			expectedFree:    "2~10",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewWithPool(tc.pool)
			assert.NoError(t, err)

			for id, d := range tc.newSuccessEntries {
				err := r.Claim(id, d)
				assert.NoError(t, err)

			}
			for id, d := range tc.newFailedEntries {
				err := r.Claim(id, d)
				assert.Error(t, err)
			}
			// check table
			for id := range tc.initEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting initEntry: %d\n", name, id)
				}
			}
			for id := range tc.newSuccessEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting success claim entry: %d\n", name, id)
				}
			}
			for id := range tc.newFailedEntries {
				if _, ok := tc.initEntries[id]; ok {
					continue
				}
				if r.Has(id) {
					t.Errorf("%s no expecting failed claim entry: %d\n", name, id)
				}
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, len(r.GetAll()))
			}
			assert.Equal(t, tc.expectedFree, r.Free().String())
		})
	}
}

func TestReserved(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	err = r.Release(4095)
	assert.True(t, errors.Is(err, ErrReserved))
	err = r.Claim(4095, nil)
	assert.True(t, errors.Is(err, ErrReserved))

	id, err := r.ClaimDynamic(labels.Set{"tenant": "a"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), id)

	selector, err := labels.Parse("status=reserved")
	assert.NoError(t, err)
	assert.Equal(t, 3, len(r.GetByLabel(selector)))
}

func TestNewError(t *testing.T) {
	_, err := NewWithPool("4000~5000")
	assert.True(t, errors.Is(err, idxtable.ErrInvalidPool))
	_, err = NewWithPool("a~c")
	assert.True(t, errors.Is(err, idxtable.ErrInvalidPool))
	_, err = NewWithPool("1~2~3")
	assert.Error(t, err)
}
