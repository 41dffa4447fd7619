package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("1,2,3")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)
}

func TestParseIDListEmpty(t *testing.T) {
	ids, err := ParseIDList("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	ids, err = ParseIDList("   ")
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestParseIDListSingle(t *testing.T) {
	ids, err := ParseIDList("42")
	require.NoError(t, err)
	assert.Equal(t, []uint{42}, ids)
}

func TestParseIDListToleratesSpaces(t *testing.T) {
	ids, err := ParseIDList(" 1, 2 ,3 ")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)
}

func TestParseIDListRejectsMalformedTokens(t *testing.T) {
	cases := []string{"abc", "1,abc", "1,,2", "1,-2", "1.5", ","}

	for _, raw := range cases {
		_, err := ParseIDList(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestDedupIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, dedupIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupIDs(nil))
}
