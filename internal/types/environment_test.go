package types

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironmentKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EnvironmentKey
		wantErr bool
	}{
		{name: "exact match", input: "POLYGON_AMOY", want: PolygonAmoy},
		{name: "lower case", input: "ethereum_mainnet", want: EthereumMainnet},
		{name: "surrounding whitespace", input: "  BSC_TESTNET\n", want: BSCTestnet},
		{name: "unknown key", input: "NONEXISTENT", wantErr: true},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvironmentKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnrecognizedKey)
				assert.Contains(t, err.Error(), "POLYGON_AMOY", "error should list the valid keys")
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnvironmentKey_RoundTripsEveryKey(t *testing.T) {
	for _, k := range AllEnvironmentKeys() {
		got, err := ParseEnvironmentKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestAllEnvironmentKeys_ReturnsCopy(t *testing.T) {
	keys := AllEnvironmentKeys()
	require.Len(t, keys, 8)
	keys[0] = "MUTATED"

	assert.Equal(t, PolygonMainnet, AllEnvironmentKeys()[0])
}

func TestEnvironmentKey_Less(t *testing.T) {
	keys := []EnvironmentKey{"ZZZ_CUSTOM", BSCTestnet, "AAA_CUSTOM", PolygonMainnet, EthereumSepolia}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	assert.Equal(t, []EnvironmentKey{PolygonMainnet, EthereumSepolia, BSCTestnet, "AAA_CUSTOM", "ZZZ_CUSTOM"}, keys)
}

func TestDefaultEnvironmentKey(t *testing.T) {
	assert.True(t, DefaultEnvironmentKey.Valid())
	assert.False(t, EnvironmentKey("NONEXISTENT").Valid())
}
