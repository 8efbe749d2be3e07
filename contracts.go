package contractgen

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Method is one bound contract function with its arguments applied.
//
// Call evaluates it against the latest state without submitting anything;
// Send submits it as a transaction.
//
//go:generate go run github.com/vektra/mockery/v2 --name Method --case underscore --with-expecter
type Method interface {
	Call(ctx context.Context, from common.Address) ([]interface{}, error)
	Send(ctx context.Context, opts *bind.TransactOpts) (*types.Transaction, error)
}

// ErrorHandler is notified of every failed request of a session.
//
//go:generate go run github.com/vektra/mockery/v2 --name ErrorHandler --case underscore --with-expecter
type ErrorHandler interface {
	HandleError(err error)
}

// ErrorHandlerFunc adapts a function to an ErrorHandler.
type ErrorHandlerFunc func(err error)

func (f ErrorHandlerFunc) HandleError(err error) {
	f(err)
}
