package catalog

import (
	"github.com/yourorg/amm-envconfig/internal/abis"
	"github.com/yourorg/amm-envconfig/internal/model"
	"github.com/yourorg/amm-envconfig/internal/types"
)

// ContractCatalog maps an environment to its AMM deployment
type ContractCatalog map[types.EnvironmentKey]model.ContractDescriptor

// Lookup returns the descriptor for key
func (c ContractCatalog) Lookup(key types.EnvironmentKey) (model.ContractDescriptor, bool) {
	d, ok := c[key]
	if !ok {
		return model.ContractDescriptor{}, false
	}
	return d.Clone(), true
}

// Keys returns the catalog keys in enumeration order
func (c ContractCatalog) Keys() []types.EnvironmentKey {
	keys := make([]types.EnvironmentKey, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// unprovisioned is a deployment slot whose AMM and tokens have not been deployed yet
func unprovisioned(description string) model.ContractDescriptor {
	return model.ContractDescriptor{
		Address:     model.ZeroAddress,
		Interface:   abis.AMMV1.Clone(),
		Name:        "AMM Contract",
		Version:     "v1",
		Description: description,
		USDC:        model.TokenDescriptor{Address: model.ZeroAddress, Interface: abis.ERC20.Clone()},
		WETH:        model.TokenDescriptor{Address: model.ZeroAddress, Interface: abis.ERC20.Clone()},
	}
}

// DefaultContracts returns a fresh copy of every known AMM deployment
func DefaultContracts() ContractCatalog {
	return ContractCatalog{
		types.PolygonMainnet: unprovisioned("Polygon Mainnet AMM Contract"),
		types.PolygonAmoy: {
			Address:     "0xE32383aB1dbea75Fa416CB7cA200b0e1c89735AC",
			Interface:   abis.AMMV1.Clone(),
			Name:        "AMM Contract",
			Version:     "v1",
			Description: "Polygon Amoy Testnet AMM Contract",
			USDC:        model.TokenDescriptor{Address: "0x8B0180f2101c8260d49339abfEe87927412494B4", Interface: abis.USDC.Clone()},
			WETH:        model.TokenDescriptor{Address: "0x52eF3d68BaB452a294342DC3e5f464d7f610f72E", Interface: abis.WETH.Clone()},
		},
		types.AvalancheMainnet: unprovisioned("Avalanche Mainnet AMM Contract"),
		types.AvalancheFuji:    unprovisioned("Avalanche Fuji Testnet AMM Contract"),
		types.EthereumMainnet:  unprovisioned("Ethereum Mainnet AMM Contract"),
		types.EthereumSepolia:  unprovisioned("Ethereum Sepolia Testnet AMM Contract"),
		types.BSCMainnet:       unprovisioned("BSC Mainnet AMM Contract"),
		types.BSCTestnet:       unprovisioned("BSC Testnet AMM Contract"),
	}
}
