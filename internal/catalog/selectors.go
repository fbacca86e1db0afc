package catalog

import (
	"fmt"
	"strconv"

	chain_selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/yourorg/amm-envconfig/internal/model"
)

// ChainDetails maps an EVM network to its CCIP chain selector and canonical chain name
func ChainDetails(n model.NetworkDescriptor) (chain_selectors.ChainDetails, error) {
	if n.ChainNamespace != "" && n.ChainNamespace != model.NamespaceEIP155 {
		return chain_selectors.ChainDetails{}, fmt.Errorf("unsupported chain namespace %q", n.ChainNamespace)
	}
	details, err := chain_selectors.GetChainDetailsByChainIDAndFamily(strconv.FormatUint(n.ID, 10), chain_selectors.FamilyEVM)
	if err != nil {
		return chain_selectors.ChainDetails{}, fmt.Errorf("no chain selector for chain id %d: %w", n.ID, err)
	}
	return details, nil
}
