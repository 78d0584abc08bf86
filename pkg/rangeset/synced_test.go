package rangeset

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/rangeset/pkg/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncedConcurrent(t *testing.T) {
	s := NewSynced(nil)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, err := s.Add(w*100 + i)
				assert.NoError(t, err)
				s.Contains(i)
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, uint64(800), s.Size())
	assert.Equal(t, "0~799", s.String())
}

func TestSynced(t *testing.T) {
	s := NewSynced(MustParse("1~10"))
	assert.True(t, s.Remove(5))
	assert.True(t, s.RemoveRange(8, 20))
	assert.True(t, s.AddRange(ranges.NewInt32(30, 31)))
	assert.Equal(t, "1~4,6~7,30~31", s.String())

	snap := s.Snapshot()
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, uint64(8), snap.Size())

	errStop := errors.New("stop")
	err := s.Update(func(set *RangeSet) error {
		if _, err := set.AddBounds(1, 3); err != nil {
			return err
		}
		return errStop
	})
	require.ErrorIs(t, err, errStop)
	assert.True(t, s.Contains(2))
}
