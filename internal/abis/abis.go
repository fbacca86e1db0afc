// Package abis holds the interface definitions referenced by the contract catalog.
package abis

import (
	"fmt"

	"github.com/yourorg/amm-envconfig/internal/model"
)

// Interface definitions decoded from the JSON literals below
var (
	AMMV1 = mustDecode("AMM v1", ammV1JSON)
	ERC20 = mustDecode("ERC20", erc20JSON)
	USDC  = mustDecode("USDC", usdcJSON)
	WETH  = mustDecode("WETH", wethJSON)
)

func mustDecode(name, raw string) model.InterfaceDefinition {
	def, err := model.DecodeInterface([]byte(raw))
	if err != nil {
		panic(fmt.Sprintf("abis: %s: %v", name, err))
	}
	return def
}

const ammV1JSON = `[
  {"type":"constructor","stateMutability":"nonpayable","inputs":[
    {"name":"_usdc","type":"address","internalType":"address"},
    {"name":"_weth","type":"address","internalType":"address"}]},
  {"type":"event","name":"LiquidityAdded","anonymous":false,"inputs":[
    {"name":"provider","type":"address","internalType":"address","indexed":true},
    {"name":"amountUSDC","type":"uint256","internalType":"uint256"},
    {"name":"amountWETH","type":"uint256","internalType":"uint256"},
    {"name":"shares","type":"uint256","internalType":"uint256"}]},
  {"type":"event","name":"LiquidityRemoved","anonymous":false,"inputs":[
    {"name":"provider","type":"address","internalType":"address","indexed":true},
    {"name":"amountUSDC","type":"uint256","internalType":"uint256"},
    {"name":"amountWETH","type":"uint256","internalType":"uint256"},
    {"name":"shares","type":"uint256","internalType":"uint256"}]},
  {"type":"event","name":"Swap","anonymous":false,"inputs":[
    {"name":"trader","type":"address","internalType":"address","indexed":true},
    {"name":"tokenIn","type":"address","internalType":"address","indexed":true},
    {"name":"amountIn","type":"uint256","internalType":"uint256"},
    {"name":"amountOut","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"addLiquidity","stateMutability":"nonpayable","inputs":[
    {"name":"amountUSDC","type":"uint256","internalType":"uint256"},
    {"name":"amountWETH","type":"uint256","internalType":"uint256"}],"outputs":[
    {"name":"shares","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"removeLiquidity","stateMutability":"nonpayable","inputs":[
    {"name":"shareAmount","type":"uint256","internalType":"uint256"}],"outputs":[
    {"name":"amountUSDC","type":"uint256","internalType":"uint256"},
    {"name":"amountWETH","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"swapUSDCForWETH","stateMutability":"nonpayable","inputs":[
    {"name":"amountIn","type":"uint256","internalType":"uint256"},
    {"name":"minAmountOut","type":"uint256","internalType":"uint256"}],"outputs":[
    {"name":"amountOut","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"swapWETHForUSDC","stateMutability":"nonpayable","inputs":[
    {"name":"amountIn","type":"uint256","internalType":"uint256"},
    {"name":"minAmountOut","type":"uint256","internalType":"uint256"}],"outputs":[
    {"name":"amountOut","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"getAmountOut","stateMutability":"pure","inputs":[
    {"name":"amountIn","type":"uint256","internalType":"uint256"},
    {"name":"reserveIn","type":"uint256","internalType":"uint256"},
    {"name":"reserveOut","type":"uint256","internalType":"uint256"}],"outputs":[
    {"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"getReserves","stateMutability":"view","inputs":[],"outputs":[
    {"name":"","type":"uint256","internalType":"uint256"},
    {"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"usdc","stateMutability":"view","inputs":[],"outputs":[
    {"name":"","type":"address","internalType":"contract IERC20"}]},
  {"type":"function","name":"weth","stateMutability":"view","inputs":[],"outputs":[
    {"name":"","type":"address","internalType":"contract IERC20"}]},
  {"type":"function","name":"reserveUSDC","stateMutability":"view","inputs":[],"outputs":[
    {"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"reserveWETH","stateMutability":"view","inputs":[],"outputs":[
    {"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"totalShares","stateMutability":"view","inputs":[],"outputs":[
    {"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"shares","stateMutability":"view","inputs":[
    {"name":"","type":"address","internalType":"address"}],"outputs":[
    {"name":"","type":"uint256","internalType":"uint256"}]},
  {"type":"function","name":"FEE_BPS","stateMutability":"view","inputs":[],"outputs":[
    {"name":"","type":"uint256","internalType":"uint256"}]}
]`

// erc20Entries is shared by every token literal; each token appends its own entries.
const erc20Entries = `
  {"type":"event","name":"Transfer","anonymous":false,"inputs":[
    {"name":"from","type":"address","indexed":true},
    {"name":"to","type":"address","indexed":true},
    {"name":"value","type":"uint256"}]},
  {"type":"event","name":"Approval","anonymous":false,"inputs":[
    {"name":"owner","type":"address","indexed":true},
    {"name":"spender","type":"address","indexed":true},
    {"name":"value","type":"uint256"}]},
  {"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
  {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[
    {"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"allowance","stateMutability":"view","inputs":[
    {"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[
    {"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[
    {"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[
    {"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}`

const erc20JSON = `[` + erc20Entries + `
]`

// usdcJSON is the test-network USDC, which exposes a public faucet mint
const usdcJSON = `[` + erc20Entries + `,
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[
    {"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

const wethJSON = `[` + erc20Entries + `,
  {"type":"event","name":"Deposit","anonymous":false,"inputs":[
    {"name":"dst","type":"address","indexed":true},{"name":"wad","type":"uint256"}]},
  {"type":"event","name":"Withdrawal","anonymous":false,"inputs":[
    {"name":"src","type":"address","indexed":true},{"name":"wad","type":"uint256"}]},
  {"type":"function","name":"deposit","stateMutability":"payable","inputs":[],"outputs":[]},
  {"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[
    {"name":"wad","type":"uint256"}],"outputs":[]}
]`
