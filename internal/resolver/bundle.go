package resolver

import (
	"github.com/yourorg/amm-envconfig/internal/model"
	"github.com/yourorg/amm-envconfig/internal/types"
)

// Bundle is the resolved configuration published to the rest of the application.
// It has no mutation path: every accessor returns a copy.
type Bundle struct {
	key      types.EnvironmentKey
	network  model.NetworkDescriptor
	contract model.ContractDescriptor
}

// Key returns the environment the bundle was resolved from
func (b Bundle) Key() types.EnvironmentKey {
	return b.key
}

// IsZero reports whether b is the zero Bundle returned alongside an error
func (b Bundle) IsZero() bool {
	return b.key == ""
}

func (b Bundle) Network() model.NetworkDescriptor {
	return b.network.Clone()
}

func (b Bundle) Contract() model.ContractDescriptor {
	return b.contract.Clone()
}

func (b Bundle) ContractAddress() string {
	return b.contract.Address
}

func (b Bundle) ContractInterface() model.InterfaceDefinition {
	return b.contract.Interface.Clone()
}

func (b Bundle) USDC() model.TokenDescriptor {
	return b.contract.USDC.Clone()
}

func (b Bundle) WETH() model.TokenDescriptor {
	return b.contract.WETH.Clone()
}

// Token returns the descriptor of a well-known token
func (b Bundle) Token(name model.TokenName) (model.TokenDescriptor, bool) {
	t, ok := b.contract.Token(name)
	if !ok {
		return model.TokenDescriptor{}, false
	}
	return t.Clone(), true
}
