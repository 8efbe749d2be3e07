package contractgen

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ErrNoSigner is returned for transaction requests of a session without a
// signer.
var ErrNoSigner = errors.New("session has no signer")

// Session is shared by the requests of the contracts bound with it.
type Session struct {
	// NetworkID selects the deployment address of each generated contract.
	NetworkID string
	// From is the account calls are made and transactions are sent from.
	From   common.Address
	Signer bind.SignerFn
	// Registry receives the errors of failed requests. Optional.
	Registry *Registry
}

func (s *Session) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if s.Signer == nil {
		return nil, ErrNoSigner
	}
	return &bind.TransactOpts{
		From:    s.From,
		Signer:  s.Signer,
		Context: ctx,
	}, nil
}
