// Package catalog holds the static network and contract catalogs, keyed by environment.
package catalog

import (
	"sort"

	"github.com/yourorg/amm-envconfig/internal/model"
	"github.com/yourorg/amm-envconfig/internal/types"
)

// NetworkCatalog maps an environment to the chain it targets
type NetworkCatalog map[types.EnvironmentKey]model.NetworkDescriptor

// Lookup returns the descriptor for key
func (c NetworkCatalog) Lookup(key types.EnvironmentKey) (model.NetworkDescriptor, bool) {
	n, ok := c[key]
	if !ok {
		return model.NetworkDescriptor{}, false
	}
	return n.Clone(), true
}

// Keys returns the catalog keys in enumeration order
func (c NetworkCatalog) Keys() []types.EnvironmentKey {
	keys := make([]types.EnvironmentKey, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []types.EnvironmentKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}

func evmNetwork(id uint64, caip, name string, currency model.NativeCurrency, rpc string, explorer model.BlockExplorer, testnet bool) model.NetworkDescriptor {
	return model.NetworkDescriptor{
		ID:             id,
		CAIPNetworkID:  caip,
		ChainNamespace: model.NamespaceEIP155,
		Name:           name,
		NativeCurrency: currency,
		RPCURLs:        []string{rpc},
		BlockExplorer:  explorer,
		Testnet:        testnet,
	}
}

// DefaultNetworks returns a fresh copy of every network the application can target
func DefaultNetworks() NetworkCatalog {
	matic := model.NativeCurrency{Name: "MATIC", Symbol: "MATIC", Decimals: 18}
	avax := model.NativeCurrency{Name: "AVAX", Symbol: "AVAX", Decimals: 18}

	return NetworkCatalog{
		types.PolygonMainnet: evmNetwork(137, "eip155:137", "Polygon Mainnet", matic,
			"https://polygon-rpc.com",
			model.BlockExplorer{Name: "PolygonScan", URL: "https://polygonscan.com"}, false),
		types.PolygonAmoy: evmNetwork(80002, "eip155:80002", "Polygon Amoy Testnet", matic,
			"https://rpc-amoy.polygon.technology",
			model.BlockExplorer{Name: "PolygonScan", URL: "https://amoy.polygonscan.com"}, true),

		types.AvalancheMainnet: evmNetwork(43114, "eip155:43114", "Avalanche C-Chain", avax,
			"https://api.avax.network/ext/bc/C/rpc",
			model.BlockExplorer{Name: "SnowTrace", URL: "https://snowtrace.io"}, false),
		types.AvalancheFuji: evmNetwork(43113, "eip155:43113", "Avalanche Fuji Testnet", avax,
			"https://api.avax-test.network/ext/bc/C/rpc",
			model.BlockExplorer{Name: "SnowTrace", URL: "https://testnet.snowtrace.io"}, true),

		types.EthereumMainnet: evmNetwork(1, "eip155:1", "Ethereum Mainnet",
			model.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
			"https://eth.llamarpc.com",
			model.BlockExplorer{Name: "Etherscan", URL: "https://etherscan.io"}, false),
		types.EthereumSepolia: evmNetwork(11155111, "eip155:11155111", "Ethereum Sepolia Testnet",
			model.NativeCurrency{Name: "Sepolia ETH", Symbol: "ETH", Decimals: 18},
			"https://rpc.sepolia.org",
			model.BlockExplorer{Name: "Etherscan", URL: "https://sepolia.etherscan.io"}, true),

		types.BSCMainnet: evmNetwork(56, "eip155:56", "BNB Smart Chain",
			model.NativeCurrency{Name: "BNB", Symbol: "BNB", Decimals: 18},
			"https://bsc-dataseed.binance.org",
			model.BlockExplorer{Name: "BscScan", URL: "https://bscscan.com"}, false),
		types.BSCTestnet: evmNetwork(97, "eip155:97", "BNB Smart Chain Testnet",
			model.NativeCurrency{Name: "tBNB", Symbol: "tBNB", Decimals: 18},
			"https://data-seed-prebsc-1-s1.binance.org:8545",
			model.BlockExplorer{Name: "BscScan", URL: "https://testnet.bscscan.com"}, true),
	}
}
