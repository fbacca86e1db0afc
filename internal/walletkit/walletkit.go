// Package walletkit shapes a resolved bundle into the configuration a browser wallet
// adapter (Reown AppKit with the wagmi adapter) expects.
package walletkit

import (
	"strconv"

	"github.com/yourorg/amm-envconfig/internal/model"
	"github.com/yourorg/amm-envconfig/internal/resolver"
)

// MetaMaskWalletID is the WalletGuide id of MetaMask
const MetaMaskWalletID = "c57ca95b47569778a828d19178114f4db188b89b763c899ba0be274e97267d96"

// PlaceholderProjectID is used when no project id is configured. Wallet connections
// fail with it, so the composition root warns about it.
const PlaceholderProjectID = "YOUR_PROJECT_ID"

// RPCEndpoints groups the HTTP transports of a network
type RPCEndpoints struct {
	HTTP []string `json:"http"`
}

// AdapterNetwork is the chain definition shape consumed by the wallet adapter
type AdapterNetwork struct {
	ID             uint64                         `json:"id"`
	CAIPNetworkID  string                         `json:"caipNetworkId"`
	ChainNamespace string                         `json:"chainNamespace"`
	Name           string                         `json:"name"`
	NativeCurrency model.NativeCurrency           `json:"nativeCurrency"`
	RPCURLs        map[string]RPCEndpoints        `json:"rpcUrls"`
	BlockExplorers map[string]model.BlockExplorer `json:"blockExplorers"`
	Testnet        bool                           `json:"testnet"`
}

// NetworkFromBundle projects the bundle's network into the adapter shape
func NetworkFromBundle(b resolver.Bundle) AdapterNetwork {
	n := b.Network()
	return AdapterNetwork{
		ID:             n.ID,
		CAIPNetworkID:  n.CAIPNetworkID,
		ChainNamespace: n.ChainNamespace,
		Name:           n.Name,
		NativeCurrency: n.NativeCurrency,
		RPCURLs:        map[string]RPCEndpoints{"default": {HTTP: n.RPCURLs}},
		BlockExplorers: map[string]model.BlockExplorer{"default": n.BlockExplorer},
		Testnet:        n.Testnet,
	}
}

// Metadata describes the dApp to the wallet
type Metadata struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Icons       []string `json:"icons" yaml:"icons"`
}

// Features toggles optional AppKit features
type Features struct {
	Analytics bool `json:"analytics" yaml:"analytics"`
	Swaps     bool `json:"swaps" yaml:"swaps"`
	Onramp    bool `json:"onramp" yaml:"onramp"`
}

// Settings are the deployment-specific wallet options that do not come from the catalogs
type Settings struct {
	ProjectID         string   `yaml:"projectId"`
	Metadata          Metadata `yaml:"metadata"`
	FeaturedWalletIDs []string `yaml:"featuredWalletIds"`
	IncludeWalletIDs  []string `yaml:"includeWalletIds"`
	AllWallets        string   `yaml:"allWallets"`
	EnableCoinbase    bool     `yaml:"enableCoinbase"`
	EnableWalletGuide bool     `yaml:"enableWalletGuide"`
	Features          Features `yaml:"features"`
}

// DefaultSettings shows only MetaMask and disables every optional feature
func DefaultSettings() Settings {
	return Settings{
		ProjectID: PlaceholderProjectID,
		Metadata: Metadata{
			Name:        "AMM",
			Description: "Automated Market Maker",
			URL:         "https://localhost:3000",
			Icons:       []string{"https://avatars.githubusercontent.com/u/37784886"},
		},
		FeaturedWalletIDs: []string{MetaMaskWalletID},
		IncludeWalletIDs:  []string{MetaMaskWalletID},
		AllWallets:        "HIDE",
	}
}

// HasProjectID reports whether a real project id is configured
func (s Settings) HasProjectID() bool {
	return s.ProjectID != "" && s.ProjectID != PlaceholderProjectID
}

// AppKitConfig is the complete adapter initialization payload
type AppKitConfig struct {
	ProjectID         string            `json:"projectId"`
	Metadata          Metadata          `json:"metadata"`
	Networks          []AdapterNetwork  `json:"networks"`
	DefaultNetwork    AdapterNetwork    `json:"defaultNetwork"`
	Transports        map[string]string `json:"transports"`
	FeaturedWalletIDs []string          `json:"featuredWalletIds"`
	IncludeWalletIDs  []string          `json:"includeWalletIds"`
	AllWallets        string            `json:"allWallets"`
	EnableCoinbase    bool              `json:"enableCoinbase"`
	EnableWalletGuide bool              `json:"enableWalletGuide"`
	Features          Features          `json:"features"`
}

// NewAppKitConfig builds the adapter payload. Only the active network is offered and
// its transport is the first RPC endpoint, keyed by chain id.
func NewAppKitConfig(b resolver.Bundle, s Settings) AppKitConfig {
	network := NetworkFromBundle(b)
	return AppKitConfig{
		ProjectID:      s.ProjectID,
		Metadata:       s.Metadata,
		Networks:       []AdapterNetwork{network},
		DefaultNetwork: network,
		Transports: map[string]string{
			strconv.FormatUint(network.ID, 10): b.Network().PrimaryRPCURL(),
		},
		FeaturedWalletIDs: s.FeaturedWalletIDs,
		IncludeWalletIDs:  s.IncludeWalletIDs,
		AllWallets:        s.AllWallets,
		EnableCoinbase:    s.EnableCoinbase,
		EnableWalletGuide: s.EnableWalletGuide,
		Features:          s.Features,
	}
}
