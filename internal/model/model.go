// Package model defines the network and contract descriptors shared by the catalogs,
// the resolver, and everything that consumes a resolved bundle.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is the reserved sentinel for a contract slot that has not been provisioned yet
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// NamespaceEIP155 is the CAIP-2 namespace of EVM chains
const NamespaceEIP155 = "eip155"

// NativeCurrency describes the gas token of a network
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// BlockExplorer is the default explorer of a network
type BlockExplorer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NetworkDescriptor is the static identity and connectivity metadata of one chain.
type NetworkDescriptor struct {
	// ID is the EIP-155 chain id
	ID uint64 `json:"id"`

	// CAIPNetworkID is the namespaced identifier, e.g. "eip155:80002"
	CAIPNetworkID string `json:"caipNetworkId"`

	ChainNamespace string         `json:"chainNamespace"`
	Name           string         `json:"name"`
	NativeCurrency NativeCurrency `json:"nativeCurrency"`

	// RPCURLs is ordered; the first entry is the default transport
	RPCURLs []string `json:"rpcUrls"`

	BlockExplorer BlockExplorer `json:"blockExplorer"`
	Testnet       bool          `json:"testnet"`
}

// ChainIDFromCAIP extracts the numeric reference from the namespaced identifier
func (n NetworkDescriptor) ChainIDFromCAIP() (uint64, error) {
	namespace, reference, ok := strings.Cut(n.CAIPNetworkID, ":")
	if !ok || namespace == "" || reference == "" {
		return 0, fmt.Errorf("malformed CAIP network id %q", n.CAIPNetworkID)
	}
	id, err := strconv.ParseUint(reference, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("CAIP network id %q has non-numeric reference: %w", n.CAIPNetworkID, err)
	}
	return id, nil
}

// CheckChainIdentity verifies that the chain id and the namespaced identifier agree
func (n NetworkDescriptor) CheckChainIdentity() error {
	namespace, _, _ := strings.Cut(n.CAIPNetworkID, ":")
	if n.ChainNamespace != "" && namespace != n.ChainNamespace {
		return fmt.Errorf("CAIP namespace %q does not match chain namespace %q", namespace, n.ChainNamespace)
	}
	id, err := n.ChainIDFromCAIP()
	if err != nil {
		return err
	}
	if id != n.ID {
		return fmt.Errorf("chain id %d does not match CAIP network id %q", n.ID, n.CAIPNetworkID)
	}
	return nil
}

// PrimaryRPCURL returns the first RPC endpoint, or "" when none is configured
func (n NetworkDescriptor) PrimaryRPCURL() string {
	if len(n.RPCURLs) == 0 {
		return ""
	}
	return n.RPCURLs[0]
}

// Clone returns a deep copy
func (n NetworkDescriptor) Clone() NetworkDescriptor {
	c := n
	if n.RPCURLs != nil {
		c.RPCURLs = append([]string(nil), n.RPCURLs...)
	}
	return c
}

// TokenName names one of the fungible tokens an AMM deployment trades
type TokenName string

// Well-known tokens every contract descriptor carries
const (
	TokenUSDC TokenName = "usdc"
	TokenWETH TokenName = "weth"
)

// TokenNames lists the well-known tokens
func TokenNames() []TokenName {
	return []TokenName{TokenUSDC, TokenWETH}
}

// TokenDescriptor is a token contract address paired with its interface definition
type TokenDescriptor struct {
	Address   string              `json:"address"`
	Interface InterfaceDefinition `json:"abi"`
}

// Clone returns a deep copy
func (t TokenDescriptor) Clone() TokenDescriptor {
	return TokenDescriptor{Address: t.Address, Interface: t.Interface.Clone()}
}

// ContractDescriptor is one AMM deployment
type ContractDescriptor struct {
	Address     string              `json:"address"`
	Interface   InterfaceDefinition `json:"abi"`
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	USDC        TokenDescriptor     `json:"usdc"`
	WETH        TokenDescriptor     `json:"weth"`
}

// Token returns the nested descriptor for a well-known token
func (c ContractDescriptor) Token(name TokenName) (TokenDescriptor, bool) {
	switch TokenName(strings.ToLower(string(name))) {
	case TokenUSDC:
		return c.USDC, true
	case TokenWETH:
		return c.WETH, true
	default:
		return TokenDescriptor{}, false
	}
}

// SemVer parses Version. Short forms such as "v1" are accepted.
func (c ContractDescriptor) SemVer() (*semver.Version, error) {
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return nil, fmt.Errorf("contract version %q: %w", c.Version, err)
	}
	return v, nil
}

// IsProvisioned reports whether the deployment has a real address
func (c ContractDescriptor) IsProvisioned() bool {
	return !IsZeroAddress(c.Address)
}

// Clone returns a deep copy
func (c ContractDescriptor) Clone() ContractDescriptor {
	cp := c
	cp.Interface = c.Interface.Clone()
	cp.USDC = c.USDC.Clone()
	cp.WETH = c.WETH.Clone()
	return cp
}

// IsZeroAddress reports whether addr is the all-zero sentinel, ignoring case
func IsZeroAddress(addr string) bool {
	return strings.EqualFold(strings.TrimSpace(addr), ZeroAddress)
}

// IsWellFormedAddress reports whether addr is a 0x-prefixed 20-byte hex account address
func IsWellFormedAddress(addr string) bool {
	return strings.HasPrefix(addr, "0x") && common.IsHexAddress(addr)
}
