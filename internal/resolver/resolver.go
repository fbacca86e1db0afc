// Package resolver turns the active environment key into a validated, immutable bundle
// of network and contract configuration.
package resolver

import (
	"fmt"
	"net/url"

	"github.com/yourorg/amm-envconfig/internal/model"
	"github.com/yourorg/amm-envconfig/internal/types"
)

// NetworkSource is the lookup side of a network catalog
type NetworkSource interface {
	Lookup(key types.EnvironmentKey) (model.NetworkDescriptor, bool)
	Keys() []types.EnvironmentKey
}

// ContractSource is the lookup side of a contract catalog
type ContractSource interface {
	Lookup(key types.EnvironmentKey) (model.ContractDescriptor, bool)
	Keys() []types.EnvironmentKey
}

// ValidationOptions holds configuration for the checks run after the catalog lookups
type ValidationOptions struct {
	// CheckNetworkIdentity verifies CAIP/chain id agreement and RPC endpoint URLs
	CheckNetworkIdentity bool

	// RequireWellFormedAddresses rejects contract and token addresses that are not
	// 20-byte hex account addresses. The zero sentinel is well formed.
	RequireWellFormedAddresses bool

	// CheckVersion warns when the contract version is not a semantic version
	CheckVersion bool
}

// DefaultValidationOptions enables every check
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		CheckNetworkIdentity:       true,
		RequireWellFormedAddresses: true,
		CheckVersion:               true,
	}
}

// LenientValidationOptions only runs the lookup, interface, and provisioning checks
func LenientValidationOptions() ValidationOptions {
	return ValidationOptions{}
}

// Resolve validates key against both catalogs with the default options.
// This is the main entrypoint for the resolver package.
func Resolve(key types.EnvironmentKey, networks NetworkSource, contracts ContractSource) (Bundle, []Warning, error) {
	return ResolveWithOptions(key, networks, contracts, DefaultValidationOptions())
}

// ResolveWithOptions is Resolve with custom validation options. It performs no I/O and
// keeps no state: the same inputs always produce the same bundle and warnings.
func ResolveWithOptions(key types.EnvironmentKey, networks NetworkSource, contracts ContractSource, opts ValidationOptions) (Bundle, []Warning, error) {
	// Network problems are checked first since they are the more fundamental failure
	network, ok := networks.Lookup(key)
	if !ok {
		return Bundle{}, nil, &ConfigurationError{
			Kind:      KindUnknownNetwork,
			Key:       key,
			ValidKeys: networks.Keys(),
			Detail:    "no network configured for this environment",
		}
	}
	if opts.CheckNetworkIdentity {
		if err := checkNetwork(key, network); err != nil {
			return Bundle{}, nil, err
		}
	}

	contract, ok := contracts.Lookup(key)
	if !ok {
		return Bundle{}, nil, &ConfigurationError{
			Kind:      KindUnknownContract,
			Key:       key,
			ValidKeys: contracts.Keys(),
			Detail:    "no contract configured for this environment",
		}
	}

	if contract.Interface.Len() == 0 {
		return Bundle{}, nil, &ConfigurationError{
			Kind:   KindMissingInterface,
			Key:    key,
			Detail: "contract interface definition is empty",
		}
	}

	if opts.RequireWellFormedAddresses {
		if err := checkAddresses(key, contract); err != nil {
			return Bundle{}, nil, err
		}
	}

	var warnings []Warning
	if model.IsZeroAddress(contract.Address) {
		warnings = append(warnings, Warning{
			Kind:    KindUnprovisionedAddress,
			Key:     key,
			Message: "deployment not yet provisioned: contract address is the zero address",
		})
	}
	if opts.CheckVersion {
		if _, err := contract.SemVer(); err != nil {
			warnings = append(warnings, Warning{
				Kind:    KindMalformedVersion,
				Key:     key,
				Message: err.Error(),
			})
		}
	}

	return Bundle{key: key, network: network, contract: contract}, warnings, nil
}

// checkNetwork validates chain identity and every RPC endpoint
func checkNetwork(key types.EnvironmentKey, n model.NetworkDescriptor) error {
	if err := n.CheckChainIdentity(); err != nil {
		return &ConfigurationError{Kind: KindChainIDMismatch, Key: key, Err: err}
	}
	if len(n.RPCURLs) == 0 {
		return &ConfigurationError{Kind: KindInvalidRPCEndpoint, Key: key, Detail: "network has no RPC endpoints"}
	}
	for _, raw := range n.RPCURLs {
		if err := checkEndpoint(raw); err != nil {
			return &ConfigurationError{Kind: KindInvalidRPCEndpoint, Key: key, Err: err}
		}
	}
	return nil
}

func checkEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("RPC endpoint %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("RPC endpoint %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("RPC endpoint %q: missing host", raw)
	}
	return nil
}

// checkAddresses validates the contract address and both token addresses
func checkAddresses(key types.EnvironmentKey, c model.ContractDescriptor) error {
	candidates := []struct {
		label   string
		address string
	}{
		{"contract", c.Address},
		{"usdc token", c.USDC.Address},
		{"weth token", c.WETH.Address},
	}
	for _, cand := range candidates {
		if !model.IsWellFormedAddress(cand.address) {
			return &ConfigurationError{
				Kind:   KindMalformedAddress,
				Key:    key,
				Detail: fmt.Sprintf("%s address %q is not a 20-byte hex account address", cand.label, cand.address),
			}
		}
	}
	return nil
}

// CheckCatalogs verifies that every contract key also has a network entry. Networks
// without a deployment are allowed.
func CheckCatalogs(networks NetworkSource, contracts ContractSource) error {
	var missing []types.EnvironmentKey
	for _, k := range contracts.Keys() {
		if _, ok := networks.Lookup(k); !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ConfigurationError{
		Kind:      KindUnknownNetwork,
		Key:       missing[0],
		ValidKeys: networks.Keys(),
		Detail:    "contract catalog keys without a network entry: " + types.JoinKeys(missing),
	}
}
