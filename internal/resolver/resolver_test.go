package resolver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/amm-envconfig/internal/catalog"
	"github.com/yourorg/amm-envconfig/internal/model"
	"github.com/yourorg/amm-envconfig/internal/types"
)

// spyContracts records whether a contract lookup was attempted
type spyContracts struct {
	catalog.ContractCatalog
	lookups int
}

func (s *spyContracts) Lookup(key types.EnvironmentKey) (model.ContractDescriptor, bool) {
	s.lookups++
	return s.ContractCatalog.Lookup(key)
}

func testNetwork() model.NetworkDescriptor {
	return model.NetworkDescriptor{
		ID:             80002,
		CAIPNetworkID:  "eip155:80002",
		ChainNamespace: model.NamespaceEIP155,
		Name:           "Test Network",
		NativeCurrency: model.NativeCurrency{Name: "MATIC", Symbol: "MATIC", Decimals: 18},
		RPCURLs:        []string{"https://rpc.test.example", "wss://ws.test.example"},
		BlockExplorer:  model.BlockExplorer{Name: "Explorer", URL: "https://explorer.test.example"},
		Testnet:        true,
	}
}

func testContract() model.ContractDescriptor {
	iface := model.InterfaceDefinition{
		{Type: "function", Name: "getReserves", StateMutability: "view"},
	}
	return model.ContractDescriptor{
		Address:     "0xE32383aB1dbea75Fa416CB7cA200b0e1c89735AC",
		Interface:   iface,
		Name:        "AMM Contract",
		Version:     "v1",
		Description: "test deployment",
		USDC:        model.TokenDescriptor{Address: "0x8B0180f2101c8260d49339abfEe87927412494B4", Interface: iface},
		WETH:        model.TokenDescriptor{Address: "0x52eF3d68BaB452a294342DC3e5f464d7f610f72E", Interface: iface},
	}
}

func TestResolve_DefaultCatalogs(t *testing.T) {
	networks := catalog.DefaultNetworks()
	contracts := catalog.DefaultContracts()

	bundle, warnings, err := Resolve(types.PolygonAmoy, networks, contracts)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, types.PolygonAmoy, bundle.Key())
	assert.Equal(t, uint64(80002), bundle.Network().ID)
	assert.Equal(t, "0xE32383aB1dbea75Fa416CB7cA200b0e1c89735AC", bundle.ContractAddress())
	assert.Equal(t, 17, bundle.ContractInterface().Len())

	// pure projection of the catalog entries
	assert.Equal(t, networks[types.PolygonAmoy], bundle.Network())
	assert.Equal(t, contracts[types.PolygonAmoy], bundle.Contract())
	assert.Equal(t, contracts[types.PolygonAmoy].USDC, bundle.USDC())
	assert.Equal(t, contracts[types.PolygonAmoy].WETH, bundle.WETH())
	assert.Equal(t, contracts[types.PolygonAmoy].Interface, bundle.ContractInterface())
}

func TestResolve_UnprovisionedAddressWarnsOnce(t *testing.T) {
	bundle, warnings, err := Resolve(types.EthereumMainnet, catalog.DefaultNetworks(), catalog.DefaultContracts())
	require.NoError(t, err)
	require.False(t, bundle.IsZero())

	assert.Equal(t, uint64(1), bundle.Network().ID)
	assert.Equal(t, model.ZeroAddress, bundle.ContractAddress())
	require.Len(t, warnings, 1)
	assert.Equal(t, KindUnprovisionedAddress, warnings[0].Kind)
	assert.Equal(t, types.EthereumMainnet, warnings[0].Key)
	assert.Contains(t, warnings[0].String(), "not yet provisioned")
}

func TestResolve_EveryDefaultKeyResolves(t *testing.T) {
	networks := catalog.DefaultNetworks()
	contracts := catalog.DefaultContracts()

	for _, key := range types.AllEnvironmentKeys() {
		t.Run(string(key), func(t *testing.T) {
			bundle, warnings, err := Resolve(key, networks, contracts)
			require.NoError(t, err)
			assert.Equal(t, key, bundle.Key())
			assert.LessOrEqual(t, len(warnings), 1)
		})
	}
}

func TestResolve_UnknownNetworkNeverLooksUpContract(t *testing.T) {
	contracts := &spyContracts{ContractCatalog: catalog.DefaultContracts()}

	bundle, warnings, err := Resolve("NONEXISTENT", catalog.DefaultNetworks(), contracts)
	require.Error(t, err)
	assert.True(t, bundle.IsZero())
	assert.Empty(t, warnings)
	assert.Equal(t, 0, contracts.lookups, "contract lookup must not run after a network failure")

	assert.ErrorIs(t, err, ErrUnknownNetwork)
	assert.NotErrorIs(t, err, ErrUnknownContract)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, KindUnknownNetwork, cfgErr.Kind)
	assert.Equal(t, types.AllEnvironmentKeys(), cfgErr.ValidKeys)
	assert.Contains(t, err.Error(), `"NONEXISTENT"`)
	assert.Contains(t, err.Error(), "POLYGON_AMOY, AVALANCHE_MAINNET")
}

func TestResolve_UnknownContract(t *testing.T) {
	networks := catalog.NetworkCatalog{types.PolygonAmoy: testNetwork(), types.BSCTestnet: testNetwork()}
	contracts := catalog.ContractCatalog{types.PolygonAmoy: testContract()}

	_, _, err := Resolve(types.BSCTestnet, networks, contracts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownContract)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []types.EnvironmentKey{types.PolygonAmoy}, cfgErr.ValidKeys, "valid keys come from the contract catalog")
}

func TestResolve_MissingInterface(t *testing.T) {
	tests := []struct {
		name  string
		iface model.InterfaceDefinition
	}{
		{name: "nil interface", iface: nil},
		{name: "empty interface", iface: model.InterfaceDefinition{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContract()
			c.Interface = tt.iface
			networks := catalog.NetworkCatalog{types.PolygonAmoy: testNetwork()}
			contracts := catalog.ContractCatalog{types.PolygonAmoy: c}

			_, warnings, err := Resolve(types.PolygonAmoy, networks, contracts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingInterface)
			assert.Empty(t, warnings)
		})
	}
}

func TestResolve_MissingInterfaceBeatsZeroAddress(t *testing.T) {
	c := testContract()
	c.Address = model.ZeroAddress
	c.Interface = nil

	_, warnings, err := Resolve(types.PolygonAmoy,
		catalog.NetworkCatalog{types.PolygonAmoy: testNetwork()},
		catalog.ContractCatalog{types.PolygonAmoy: c})
	assert.ErrorIs(t, err, ErrMissingInterface)
	assert.Empty(t, warnings)
}

func TestResolveWithOptions_NetworkChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *model.NetworkDescriptor)
		want   error
	}{
		{name: "chain id mismatch", mutate: func(n *model.NetworkDescriptor) { n.ID = 137 }, want: ErrChainIDMismatch},
		{name: "no rpc endpoints", mutate: func(n *model.NetworkDescriptor) { n.RPCURLs = nil }, want: ErrInvalidRPCEndpoint},
		{name: "relative rpc endpoint", mutate: func(n *model.NetworkDescriptor) { n.RPCURLs = []string{"rpc.test.example"} }, want: ErrInvalidRPCEndpoint},
		{name: "unsupported scheme", mutate: func(n *model.NetworkDescriptor) { n.RPCURLs = []string{"ftp://rpc.test.example"} }, want: ErrInvalidRPCEndpoint},
		{name: "unparseable endpoint", mutate: func(n *model.NetworkDescriptor) { n.RPCURLs = []string{"https://[::1"} }, want: ErrInvalidRPCEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := testNetwork()
			tt.mutate(&n)
			networks := catalog.NetworkCatalog{types.PolygonAmoy: n}
			contracts := &spyContracts{ContractCatalog: catalog.ContractCatalog{types.PolygonAmoy: testContract()}}

			_, _, err := ResolveWithOptions(types.PolygonAmoy, networks, contracts, DefaultValidationOptions())
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, contracts.lookups)

			_, _, err = ResolveWithOptions(types.PolygonAmoy, networks, contracts, LenientValidationOptions())
			assert.NoError(t, err, "lenient options skip network checks")
		})
	}
}

func TestResolveWithOptions_AddressChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *model.ContractDescriptor)
		detail string
	}{
		{name: "short contract address", mutate: func(c *model.ContractDescriptor) { c.Address = "0xE323" }, detail: "contract address"},
		{name: "missing prefix", mutate: func(c *model.ContractDescriptor) { c.Address = "E32383aB1dbea75Fa416CB7cA200b0e1c89735AC" }, detail: "contract address"},
		{name: "bad usdc", mutate: func(c *model.ContractDescriptor) { c.USDC.Address = "usdc" }, detail: "usdc token"},
		{name: "bad weth", mutate: func(c *model.ContractDescriptor) { c.WETH.Address = "" }, detail: "weth token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContract()
			tt.mutate(&c)
			networks := catalog.NetworkCatalog{types.PolygonAmoy: testNetwork()}
			contracts := catalog.ContractCatalog{types.PolygonAmoy: c}

			_, _, err := Resolve(types.PolygonAmoy, networks, contracts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedAddress)
			assert.Contains(t, err.Error(), tt.detail)

			_, warnings, err := ResolveWithOptions(types.PolygonAmoy, networks, contracts, LenientValidationOptions())
			assert.NoError(t, err)
			assert.Empty(t, warnings)
		})
	}
}

func TestResolve_MalformedVersionWarns(t *testing.T) {
	c := testContract()
	c.Version = "first release"
	networks := catalog.NetworkCatalog{types.PolygonAmoy: testNetwork()}
	contracts := catalog.ContractCatalog{types.PolygonAmoy: c}

	_, warnings, err := Resolve(types.PolygonAmoy, networks, contracts)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, KindMalformedVersion, warnings[0].Kind)
}

func TestResolve_Idempotent(t *testing.T) {
	networks := catalog.DefaultNetworks()
	contracts := catalog.DefaultContracts()

	for _, key := range []types.EnvironmentKey{types.PolygonAmoy, types.EthereumMainnet} {
		first, firstWarnings, err := Resolve(key, networks, contracts)
		require.NoError(t, err)
		second, secondWarnings, err := Resolve(key, networks, contracts)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, firstWarnings, secondWarnings)
	}
}

func TestBundle_AccessorsReturnCopies(t *testing.T) {
	bundle, _, err := Resolve(types.PolygonAmoy, catalog.DefaultNetworks(), catalog.DefaultContracts())
	require.NoError(t, err)

	n := bundle.Network()
	n.RPCURLs[0] = "https://mutated.example"
	iface := bundle.ContractInterface()
	iface[0].Name = "mutated"
	usdc := bundle.USDC()
	usdc.Interface[0].Name = "mutated"

	assert.Equal(t, "https://rpc-amoy.polygon.technology", bundle.Network().PrimaryRPCURL())
	assert.NotEqual(t, "mutated", bundle.ContractInterface()[0].Name)
	assert.NotEqual(t, "mutated", bundle.USDC().Interface[0].Name)

	weth, ok := bundle.Token(model.TokenWETH)
	require.True(t, ok)
	assert.Equal(t, bundle.WETH(), weth)
	_, ok = bundle.Token("dai")
	assert.False(t, ok)
}

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{
		Kind:      KindUnknownNetwork,
		Key:       "NOPE",
		ValidKeys: []types.EnvironmentKey{types.PolygonAmoy, types.BSCTestnet},
		Detail:    "no network configured for this environment",
	}
	assert.Equal(t,
		`configuration error (UnknownNetwork) for environment "NOPE": no network configured for this environment (valid keys: POLYGON_AMOY, BSC_TESTNET)`,
		err.Error())

	cause := errors.New("boom")
	wrapped := &ConfigurationError{Kind: KindChainIDMismatch, Key: types.PolygonAmoy, Err: cause}
	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, ErrChainIDMismatch)
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestKindOf(t *testing.T) {
	_, _, err := Resolve("NONEXISTENT", catalog.DefaultNetworks(), catalog.DefaultContracts())
	kind, ok := KindOf(fmt.Errorf("startup: %w", err))
	assert.True(t, ok)
	assert.Equal(t, KindUnknownNetwork, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestCheckCatalogs(t *testing.T) {
	require.NoError(t, CheckCatalogs(catalog.DefaultNetworks(), catalog.DefaultContracts()))

	networks := catalog.NetworkCatalog{types.PolygonAmoy: testNetwork()}
	contracts := catalog.ContractCatalog{
		types.PolygonAmoy:     testContract(),
		types.EthereumMainnet: testContract(),
		types.BSCTestnet:      testContract(),
	}

	err := CheckCatalogs(networks, contracts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownNetwork)
	assert.Contains(t, err.Error(), "ETHEREUM_MAINNET, BSC_TESTNET")
	assert.NotContains(t, err.Error(), "without a network entry: POLYGON_AMOY")

	// a network without a deployment is fine
	assert.NoError(t, CheckCatalogs(catalog.DefaultNetworks(), catalog.ContractCatalog{}))
}
