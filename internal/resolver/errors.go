package resolver

import (
	"errors"
	"fmt"

	"github.com/yourorg/amm-envconfig/internal/types"
)

// ErrorKind classifies a resolution failure or warning
type ErrorKind string

// Fatal kinds
const (
	KindUnknownNetwork     ErrorKind = "UnknownNetwork"
	KindUnknownContract    ErrorKind = "UnknownContract"
	KindMissingInterface   ErrorKind = "MissingInterface"
	KindChainIDMismatch    ErrorKind = "ChainIDMismatch"
	KindInvalidRPCEndpoint ErrorKind = "InvalidRPCEndpoint"
	KindMalformedAddress   ErrorKind = "MalformedAddress"
)

// Non-fatal kinds
const (
	KindUnprovisionedAddress ErrorKind = "UnprovisionedAddress"
	KindMalformedVersion     ErrorKind = "MalformedVersion"
)

// Sentinels for errors.Is; each *ConfigurationError matches the one for its kind.
var (
	ErrUnknownNetwork     = errors.New("unknown network")
	ErrUnknownContract    = errors.New("unknown contract")
	ErrMissingInterface   = errors.New("missing interface definition")
	ErrChainIDMismatch    = errors.New("chain id mismatch")
	ErrInvalidRPCEndpoint = errors.New("invalid RPC endpoint")
	ErrMalformedAddress   = errors.New("malformed address")
)

var sentinels = map[ErrorKind]error{
	KindUnknownNetwork:     ErrUnknownNetwork,
	KindUnknownContract:    ErrUnknownContract,
	KindMissingInterface:   ErrMissingInterface,
	KindChainIDMismatch:    ErrChainIDMismatch,
	KindInvalidRPCEndpoint: ErrInvalidRPCEndpoint,
	KindMalformedAddress:   ErrMalformedAddress,
}

// ConfigurationError is a fatal resolution failure. Nothing can be done about it at
// runtime: the static catalogs or the active key have to change.
type ConfigurationError struct {
	Kind ErrorKind
	Key  types.EnvironmentKey

	// ValidKeys are the keys of the catalog the lookup ran against, in enumeration order
	ValidKeys []types.EnvironmentKey

	// Detail is an optional human readable explanation
	Detail string

	// Err is the underlying cause, if any
	Err error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error (%s) for environment %q", e.Kind, e.Key)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.ValidKeys) > 0 {
		msg += fmt.Sprintf(" (valid keys: %s)", types.JoinKeys(e.ValidKeys))
	}
	return msg
}

// Is matches the sentinel for the error's kind
func (e *ConfigurationError) Is(target error) bool {
	sentinel, ok := sentinels[e.Kind]
	return ok && target == sentinel
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Warning is a non-fatal finding. Resolution continues and the caller decides how to surface it.
type Warning struct {
	Kind    ErrorKind            `json:"kind"`
	Key     types.EnvironmentKey `json:"key"`
	Message string               `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (%s): %s", w.Kind, w.Key, w.Message)
}

// KindOf extracts the kind of a *ConfigurationError anywhere in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind, true
	}
	return "", false
}
