// Package integrity computes tamper-evident digests of a resolved bundle
package integrity

import (
	"crypto/sha256"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	jsoniter "github.com/json-iterator/go"

	"github.com/yourorg/amm-envconfig/internal/model"
	"github.com/yourorg/amm-envconfig/internal/resolver"
	"github.com/yourorg/amm-envconfig/internal/types"
)

// canonical encodes with sorted map keys so equal bundles always hash the same
var canonical = jsoniter.Config{
	SortMapKeys:            true,
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// Fingerprint identifies the published content of a bundle
type Fingerprint struct {
	SHA256    string `json:"sha256"`
	Keccak256 string `json:"keccak256"`
}

// ETag renders the fingerprint as a strong HTTP entity tag
func (f Fingerprint) ETag() string {
	return `"` + f.SHA256 + `"`
}

// Short returns an abbreviated form for logs
func (f Fingerprint) Short() string {
	if len(f.SHA256) < 12 {
		return f.SHA256
	}
	return f.SHA256[:12]
}

// published mirrors everything a bundle exposes to consumers
type published struct {
	Key      types.EnvironmentKey     `json:"key"`
	Network  model.NetworkDescriptor  `json:"network"`
	Contract model.ContractDescriptor `json:"contract"`
}

// Compute returns the digests of the canonical JSON encoding of the bundle
func Compute(b resolver.Bundle) (Fingerprint, error) {
	if b.IsZero() {
		return Fingerprint{}, fmt.Errorf("cannot fingerprint an unresolved bundle")
	}

	payload, err := canonical.Marshal(published{
		Key:      b.Key(),
		Network:  b.Network(),
		Contract: b.Contract(),
	})
	if err != nil {
		return Fingerprint{}, fmt.Errorf("failed to marshal bundle: %w", err)
	}

	return Fingerprint{
		SHA256:    fmt.Sprintf("%x", sha256.Sum256(payload)),
		Keccak256: crypto.Keccak256Hash(payload).Hex(),
	}, nil
}
