package generate

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func emitGo(t *testing.T, e *GoEmitter, schema *Schema) string {
	t.Helper()
	code, err := e.Emit(schema)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "contract.go", code, parser.AllErrors)
	require.NoError(t, err, code)
	return code
}

func TestGoEndToEnd(t *testing.T) {
	schema, err := ParseFile("testdata/Token.json")
	require.NoError(t, err)

	code := emitGo(t, &GoEmitter{Package: "bindings"}, schema)

	require.True(t, strings.HasPrefix(code, "// Code generated by contractgen. DO NOT EDIT.\n\npackage bindings\n"))
	require.Contains(t, code, `"math/big"`)
	require.Contains(t, code, "type TokenContract struct")
	require.Contains(t, code, "func NewTokenContract(backend bind.ContractBackend, session *contractgen.Session) (*TokenContract, error) {\n\tif session == nil {\n\t\treturn nil, errors.New(\"Token: nil session\")\n\t}\n")
	require.Contains(t, code, `"1":    "0xdAC17F958D2ee523a2206206994597C13D831ec7",`)
	require.Contains(t, code, `"1337": "0x5FbDB2315678afecb367f032d93F642f64180aa3",`)

	require.Contains(t, code, "func (c *TokenContract) BalanceOf(owner common.Address) *contractgen.Request {")
	require.Contains(t, code, `contractgen.BindMethod(c.contract, "balanceOf", owner)`)
	require.Contains(t, code, "contractgen.NewRequest(c.session, method, false)")

	require.Contains(t, code, "func (c *TokenContract) Transfer(to common.Address, value *big.Int) *contractgen.Request {")
	require.Contains(t, code, "func (c *TokenContract) BatchTransfer(recipients []common.Address, values []*big.Int, memo [32]uint8) *contractgen.Request {")
	require.Contains(t, code, "func (c *TokenContract) Decimals() *contractgen.Request {")
}

func TestGoDefaultPackage(t *testing.T) {
	schema := &Schema{ContractName: "Empty", ABI: []Member{}}
	code := emitGo(t, &GoEmitter{}, schema)

	require.Contains(t, code, "package contracts\n")
	require.NotContains(t, code, `"math/big"`)
	require.Contains(t, code, "const EmptyABI = \"[]\"")
}

func TestGoDeterministic(t *testing.T) {
	schema, err := ParseFile("testdata/Token.json")
	require.NoError(t, err)

	e := &GoEmitter{}
	require.Equal(t, emitGo(t, e, schema), emitGo(t, e, schema))
}

func TestGoOverloads(t *testing.T) {
	schema := &Schema{
		ContractName: "Vault",
		ABI: []Member{
			function("deposit", Payable),
			function("deposit", Payable, Parameter{Name: "to", Type: "address"}),
			function("deposit", Payable, Parameter{Name: "to", Type: "address"}, Parameter{Name: "memo", Type: "string"}),
		},
	}
	code := emitGo(t, &GoEmitter{}, schema)

	require.Contains(t, code, "func (c *VaultContract) Deposit() *contractgen.Request {")
	require.Contains(t, code, "func (c *VaultContract) Deposit0(to common.Address) *contractgen.Request {")
	require.Contains(t, code, `contractgen.BindMethod(c.contract, "deposit0", to)`)
	require.Contains(t, code, "func (c *VaultContract) Deposit1(to common.Address, memo string) *contractgen.Request {")
	require.Contains(t, code, `contractgen.BindMethod(c.contract, "deposit1", to, memo)`)
}

func TestGoParameterNames(t *testing.T) {
	schema := &Schema{
		ContractName: "names",
		ABI: []Member{
			function("set", NonPayable,
				Parameter{Name: "", Type: "bool"},
				Parameter{Name: "_type", Type: "uint8"},
				Parameter{Name: "value", Type: "int256"},
				Parameter{Name: "_value", Type: "address"},
			),
		},
	}
	code := emitGo(t, &GoEmitter{}, schema)

	require.Contains(t, code, "type NamesContract struct")
	require.Contains(t, code, "func (c *NamesContract) Set(arg0 bool, type_ uint8, value *big.Int, value3 common.Address) *contractgen.Request {")
	require.Contains(t, code, "contractgen.NewRequest(c.session, method, true)")
}

func TestGoTuple(t *testing.T) {
	schema := &Schema{
		ContractName: "Orders",
		ABI: []Member{
			function("place", NonPayable, Parameter{
				Name: "order",
				Type: "tuple",
				Components: []Parameter{
					{Name: "maker", Type: "address"},
					{Name: "amount", Type: "uint256"},
				},
			}),
		},
	}
	code := emitGo(t, &GoEmitter{}, schema)
	require.Contains(t, code, "func (c *OrdersContract) Place(order struct {")
}

func TestGoInvalidType(t *testing.T) {
	schema := &Schema{
		ContractName: "Broken",
		ABI:          []Member{function("f", View, Parameter{Name: "x", Type: "notatype"})},
	}
	_, err := (&GoEmitter{}).Emit(schema)
	require.ErrorContains(t, err, "function f: parameter 0")
}

func TestGoInvalidContractName(t *testing.T) {
	_, err := (&GoEmitter{}).Emit(&Schema{ContractName: "$"})
	require.ErrorContains(t, err, "no Go identifier form")
}
