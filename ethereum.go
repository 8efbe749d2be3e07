package contractgen

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

var _ Method = (*boundMethod)(nil)

type boundMethod struct {
	contract *bind.BoundContract
	name     string
	params   []interface{}
}

// BindMethod applies params to the ABI method name of contract.
func BindMethod(contract *bind.BoundContract, name string, params ...interface{}) Method {
	return &boundMethod{
		contract: contract,
		name:     name,
		params:   params,
	}
}

func (m *boundMethod) Call(ctx context.Context, from common.Address) ([]interface{}, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, From: from}
	err := m.contract.Call(opts, &out, m.name, m.params...)
	if err != nil {
		return nil, errors.Wrapf(err, "calling %s", m.name)
	}
	return out, nil
}

func (m *boundMethod) Send(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error) {
	withCtx := *opts
	withCtx.Context = ctx
	tx, err := m.contract.Transact(&withCtx, m.name, m.params...)
	return tx, errors.Wrapf(err, "transacting %s", m.name)
}
