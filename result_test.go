package contractgen_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ustchcl/contractgen"
)

func TestResultMarshalJSON(t *testing.T) {
	tx := types.NewTx(&types.LegacyTx{Nonce: 7, Gas: 21000, GasPrice: big.NewInt(1)})

	table := []struct {
		name   string
		result contractgen.Result
		want   string
	}{
		{
			name:   "Values",
			result: contractgen.Result{Values: []interface{}{"0xabc", true}},
			want:   `{"ok":true,"values":["0xabc",true]}`,
		},
		{
			name:   "Transaction",
			result: contractgen.Result{Transaction: tx},
			want:   `{"ok":true,"transaction":"` + tx.Hash().Hex() + `"}`,
		},
		{
			name:   "Error",
			result: contractgen.Result{Error: errors.New("execution reverted")},
			want:   `{"ok":false,"error":"execution reverted"}`,
		},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.result)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(data))
		})
	}
}
