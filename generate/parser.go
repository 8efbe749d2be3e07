package generate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
)

var (
	identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	typeTag    = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\[[0-9]*\])*$`)
)

// ParseFile reads and validates the artifact at path.
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading artifact")
	}

	schema, err := ParseSchema(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filepath.Base(path))
	}
	return schema, nil
}

// ParseSchema decodes an artifact and normalizes its members so that every
// function carries an explicit type and mutability.
func ParseSchema(data []byte) (*Schema, error) {
	var artifact struct {
		ContractName string             `json:"contractName"`
		ABI          json.RawMessage    `json:"abi"`
		Networks     map[string]Network `json:"networks"`
	}
	err := json.Unmarshal(data, &artifact)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal artifact")
	}

	if artifact.ContractName == "" {
		return nil, errors.New("missing contractName")
	}
	if !identifier.MatchString(artifact.ContractName) {
		return nil, errors.Errorf("contractName %q is not a valid identifier", artifact.ContractName)
	}
	if len(artifact.ABI) == 0 {
		return nil, errors.Errorf("%s: missing abi", artifact.ContractName)
	}

	schema := &Schema{
		ContractName: artifact.ContractName,
		Networks:     artifact.Networks,
		RawABI:       artifact.ABI,
	}
	if schema.Networks == nil {
		schema.Networks = map[string]Network{}
	}

	err = json.Unmarshal(artifact.ABI, &schema.ABI)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: unmarshal abi", artifact.ContractName)
	}

	for i := range schema.ABI {
		err := normalizeMember(&schema.ABI[i])
		if err != nil {
			return nil, errors.Wrapf(err, "%s: abi[%d]", artifact.ContractName, i)
		}
	}

	return schema, nil
}

func normalizeMember(m *Member) error {
	if m.Type == "" {
		m.Type = MemberFunction
	}
	if m.Type != MemberFunction {
		return nil
	}

	if m.Name == "" {
		return errors.New("function without a name")
	}
	if !identifier.MatchString(m.Name) {
		return errors.Errorf("function name %q is not a valid identifier", m.Name)
	}

	// Unnamed and untyped parameters are allowed; they are left out of
	// generated signatures.
	for i, p := range m.Inputs {
		name := ParamName(p.Name)
		if name != "" && !identifier.MatchString(name) {
			return errors.Errorf("function %s: parameter %d: name %q is not a valid identifier", m.Name, i, p.Name)
		}
		if p.Type != "" && !typeTag.MatchString(p.Type) {
			return errors.Errorf("function %s: parameter %d: malformed type %q", m.Name, i, p.Type)
		}
	}

	if m.StateMutability == "" {
		switch {
		case m.Constant != nil && *m.Constant:
			m.StateMutability = View
		case m.Payable != nil && *m.Payable:
			m.StateMutability = Payable
		case m.Constant != nil || m.Payable != nil:
			m.StateMutability = NonPayable
		default:
			return errors.Errorf("function %s: missing stateMutability", m.Name)
		}
	}

	if !m.StateMutability.valid() {
		return errors.Errorf("function %s: unknown stateMutability %q", m.Name, m.StateMutability)
	}
	return nil
}
