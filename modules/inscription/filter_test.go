package inscription

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInscribeFilter(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		filter, err := LoadInscribeFilter("")
		require.NoError(t, err)
		assert.False(t, filter.ShouldReject("0x01", 1))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "filter.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tx_filter":["0xAB"],"block_filter":[100],"mint_pass_tx":["0xcd"]}`), 0o600))

		filter, err := LoadInscribeFilter(path)
		require.NoError(t, err)

		txs, blocks, mintPass := filter.Len()
		assert.Equal(t, 1, txs)
		assert.Equal(t, 1, blocks)
		assert.Equal(t, 1, mintPass)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadInscribeFilter(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "filter.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"block_filter":["abc"]}`), 0o600))

		_, err := LoadInscribeFilter(path)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestInscribeFilter(t *testing.T) {
	filter := NewInscribeFilter([]string{"0xAbC"}, []uint64{100}, []string{"0xMint"})

	testCases := []struct {
		name        string
		txHash      string
		blockNumber uint64
		expected    bool
	}{
		{name: "denied tx", txHash: "0xabc", blockNumber: 1, expected: true},
		{name: "denied tx upper case", txHash: "0xABC", blockNumber: 1, expected: true},
		{name: "denied block", txHash: "0xdef", blockNumber: 100, expected: true},
		{name: "allowed", txHash: "0xdef", blockNumber: 101, expected: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, filter.ShouldReject(tc.txHash, tc.blockNumber))
		})
	}

	assert.True(t, filter.IsMintPass("0xmint"))
	assert.False(t, filter.IsMintPass("0xabc"))

	var nilFilter *InscribeFilter
	assert.False(t, nilFilter.ShouldReject("0xabc", 100))
}
