// Package types contains shared type definitions used across multiple packages
package types

import (
	"errors"
	"fmt"
	"strings"
)

// EnvironmentKey identifies one deployment target: a network plus its contract deployment.
// Both the network and the contract catalogs are indexed by it.
type EnvironmentKey string

// Supported deployment environments
const (
	PolygonMainnet   EnvironmentKey = "POLYGON_MAINNET"
	PolygonAmoy      EnvironmentKey = "POLYGON_AMOY"
	AvalancheMainnet EnvironmentKey = "AVALANCHE_MAINNET"
	AvalancheFuji    EnvironmentKey = "AVALANCHE_FUJI"
	EthereumMainnet  EnvironmentKey = "ETHEREUM_MAINNET"
	EthereumSepolia  EnvironmentKey = "ETHEREUM_SEPOLIA"
	BSCMainnet       EnvironmentKey = "BSC_MAINNET"
	BSCTestnet       EnvironmentKey = "BSC_TESTNET"
)

// DefaultEnvironmentKey is used when no active environment is configured
const DefaultEnvironmentKey = PolygonAmoy

// ErrUnrecognizedKey is returned when external input does not name a known environment
var ErrUnrecognizedKey = errors.New("unrecognized environment key")

var allKeys = []EnvironmentKey{
	PolygonMainnet,
	PolygonAmoy,
	AvalancheMainnet,
	AvalancheFuji,
	EthereumMainnet,
	EthereumSepolia,
	BSCMainnet,
	BSCTestnet,
}

// AllEnvironmentKeys returns every supported key in declaration order
func AllEnvironmentKeys() []EnvironmentKey {
	keys := make([]EnvironmentKey, len(allKeys))
	copy(keys, allKeys)
	return keys
}

// Valid reports whether k is one of the supported keys
func (k EnvironmentKey) Valid() bool {
	return k.ordinal() >= 0
}

// Less orders keys by declaration order. Unknown keys sort last, alphabetically.
func (k EnvironmentKey) Less(other EnvironmentKey) bool {
	a, b := k.ordinal(), other.ordinal()
	switch {
	case a >= 0 && b >= 0:
		return a < b
	case a >= 0:
		return true
	case b >= 0:
		return false
	default:
		return k < other
	}
}

func (k EnvironmentKey) String() string {
	return string(k)
}

func (k EnvironmentKey) ordinal() int {
	for i, known := range allKeys {
		if k == known {
			return i
		}
	}
	return -1
}

// ParseEnvironmentKey decodes an externally supplied value (e.g. an environment variable)
// into a supported key. Matching ignores surrounding whitespace and case.
func ParseEnvironmentKey(raw string) (EnvironmentKey, error) {
	candidate := EnvironmentKey(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q (valid keys: %s)", ErrUnrecognizedKey, raw, JoinKeys(allKeys))
}

// JoinKeys renders keys as a comma separated list
func JoinKeys(keys []EnvironmentKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
