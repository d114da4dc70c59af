package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	gt0 := String("0|0")
	gt1 := String("0|1")
	dp0 := Integer(13)

	samples := NewSamples(
		[]string{"GT", "DP"},
		[][]*Value{
			{&gt0, &dp0},
			{&gt1, nil},
		},
	)

	assert.Equal(t, []string{"GT", "DP"}, samples.Keys())
	assert.Equal(t, 2, samples.Len())

	row, ok := samples.Row(0)
	require.True(t, ok)
	assert.Equal(t, []*Value{&gt0, &dp0}, row)

	_, ok = samples.Row(2)
	assert.False(t, ok)

	dp, ok := samples.Series("DP")
	require.True(t, ok)
	assert.Equal(t, "DP", dp.Name())

	v, ok := dp.Get(0)
	require.True(t, ok)
	assert.Equal(t, &dp0, v)

	v, ok = dp.Get(1)
	require.True(t, ok)
	assert.Nil(t, v)

	_, ok = dp.Get(2)
	assert.False(t, ok)

	_, ok = samples.Series("HQ")
	assert.False(t, ok)
}
