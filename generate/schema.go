package generate

import "encoding/json"

// MemberType is the kind of an ABI entry.
type MemberType string

const (
	MemberFunction    MemberType = "function"
	MemberConstructor MemberType = "constructor"
	MemberEvent       MemberType = "event"
)

// Mutability classifies whether calling a function can change state.
type Mutability string

const (
	Payable    Mutability = "payable"
	NonPayable Mutability = "nonpayable"
	Pure       Mutability = "pure"
	View       Mutability = "view"
)

// IsSend reports whether a call must be submitted as a transaction.
func (m Mutability) IsSend() bool {
	return m != Pure && m != View
}

func (m Mutability) valid() bool {
	switch m {
	case Payable, NonPayable, Pure, View:
		return true
	}
	return false
}

type Parameter struct {
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Components []Parameter `json:"components,omitempty"`
}

// Member is one entry of an ABI. Only function members are emitted.
type Member struct {
	Type            MemberType  `json:"type"`
	Name            string      `json:"name"`
	Inputs          []Parameter `json:"inputs"`
	Outputs         []Parameter `json:"outputs"`
	StateMutability Mutability  `json:"stateMutability"`

	// Set by compilers that predate stateMutability.
	Constant *bool `json:"constant,omitempty"`
	Payable  *bool `json:"payable,omitempty"`
}

type Network struct {
	Address string `json:"address"`
}

// Schema is a compiled contract artifact.
type Schema struct {
	ContractName string             `json:"contractName"`
	ABI          []Member           `json:"abi"`
	Networks     map[string]Network `json:"networks"`

	// RawABI is the abi array exactly as it appeared in the artifact.
	RawABI json.RawMessage `json:"-"`
}

// Functions returns the function members in source order.
func (s *Schema) Functions() []Member {
	functions := make([]Member, 0, len(s.ABI))
	for _, m := range s.ABI {
		if m.Type == MemberFunction {
			functions = append(functions, m)
		}
	}
	return functions
}
