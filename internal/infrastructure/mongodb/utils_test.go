package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal128_IdaYVuelta(t *testing.T) {
	for _, s := range []string{"0", "150", "12.5", "0.0001", "99999999999.123456"} {
		d := decimal.RequireFromString(s)
		v, err := toDecimal128(d)
		require.NoError(t, err)
		back, err := fromDecimal128(v)
		require.NoError(t, err)
		assert.True(t, d.Equal(back), "%s != %s", d, back)
	}
}

func TestPageOptions(t *testing.T) {
	opts := pageOptions(20, 40)
	require.NotNil(t, opts.Limit)
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(20), *opts.Limit)
	assert.Equal(t, int64(40), *opts.Skip)

	none := pageOptions(0, 0)
	assert.Nil(t, none.Limit)
	assert.Nil(t, none.Skip)
}
