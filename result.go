package contractgen

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Result is the tagged outcome of a request: either the values returned by
// a call, or the submitted transaction, or an error.
type Result struct {
	Values      []interface{}
	Transaction *types.Transaction
	Error       error
}

func (r Result) OK() bool {
	return r.Error == nil
}

type jsonResult struct {
	OK          bool          `json:"ok"`
	Values      []interface{} `json:"values,omitempty"`
	Transaction string        `json:"transaction,omitempty"`
	Error       string        `json:"error,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	res := jsonResult{
		OK:     r.OK(),
		Values: r.Values,
	}
	if r.Transaction != nil {
		res.Transaction = r.Transaction.Hash().Hex()
	}
	if r.Error != nil {
		res.Error = r.Error.Error()
	}

	data, err := json.Marshal(res)
	return data, errors.Wrap(err, "marshal Result")
}
