package abis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/amm-envconfig/internal/model"
)

func TestLiteralsParse(t *testing.T) {
	tests := []struct {
		name    string
		def     model.InterfaceDefinition
		entries int
		methods []string
	}{
		{name: "amm v1", def: AMMV1, entries: 17, methods: []string{"addLiquidity", "swapUSDCForWETH", "getReserves"}},
		{name: "erc20", def: ERC20, entries: 11, methods: []string{"balanceOf", "approve", "transferFrom"}},
		{name: "usdc", def: USDC, entries: 12, methods: []string{"mint", "approve"}},
		{name: "weth", def: WETH, entries: 15, methods: []string{"deposit", "withdraw", "approve"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.entries, tt.def.Len())

			parsed, err := tt.def.Parse()
			require.NoError(t, err)
			for _, m := range tt.methods {
				assert.Contains(t, parsed.Methods, m)
			}
		})
	}
}

func TestAMMV1_Shape(t *testing.T) {
	parsed, err := AMMV1.Parse()
	require.NoError(t, err)

	assert.Len(t, parsed.Constructor.Inputs, 2)
	assert.Len(t, parsed.Events, 3)
	assert.Len(t, parsed.Methods, 13)

	swap := parsed.Events["Swap"]
	assert.Equal(t, "Swap(address,address,uint256,uint256)", swap.Sig)
}
