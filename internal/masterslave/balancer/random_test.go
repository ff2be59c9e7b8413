package balancer

import (
	"testing"

	"github.com/meoying/msrouter/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_Select(t *testing.T) {
	slaves := []string{"slave_0", "slave_1", "slave_2"}
	r1, r2 := NewRandom(42), NewRandom(42)
	for i := 0; i < 50; i++ {
		s1, err := r1.Select("ms_group", "master", slaves)
		require.NoError(t, err)
		s2, err := r2.Select("ms_group", "master", slaves)
		require.NoError(t, err)
		// 相同的 seed 得到相同的序列
		assert.Equal(t, s1, s2)
		assert.Contains(t, slaves, s1)
		assert.NotEqual(t, "master", s1)
	}
}

func TestRandom_SingleSlave(t *testing.T) {
	r := NewRandom(1)
	s, err := r.Select("ms_group", "master", []string{"slave_0"})
	require.NoError(t, err)
	assert.Equal(t, "slave_0", s)
}

func TestRandom_NoSlaves(t *testing.T) {
	_, err := NewRandom(1).Select("ms_group", "master", []string{})
	assert.ErrorIs(t, err, errs.ErrConfiguration)
}
