package generate

import (
	"bytes"
	"encoding/json"
	"go/format"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

var _ Emitter = (*GoEmitter)(nil)

// GoEmitter renders go-ethereum bindings whose methods return requests of
// the contractgen runtime package.
type GoEmitter struct {
	Package string
}

type goParam struct {
	Name string
	Type string
}

type goMethod struct {
	GoName  string
	ABIName string
	Params  []goParam
	Send    bool
}

func (m goMethod) Signature() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Name + " " + p.Type
	}
	return strings.Join(params, ", ")
}

type goNetwork struct {
	ID      string
	Address string
}

type goModule struct {
	Package  string
	Name     string
	ABI      string
	Networks []goNetwork
	Methods  []goMethod
	NeedsBig bool
}

func (e *GoEmitter) Emit(schema *Schema) (string, error) {
	if schema == nil {
		return "", errors.New("nil schema")
	}

	pkg := e.Package
	if pkg == "" {
		pkg = "contracts"
	}

	rawABI := []byte(schema.RawABI)
	if len(rawABI) == 0 {
		var err error
		rawABI, err = json.Marshal(schema.ABI)
		if err != nil {
			return "", errors.Wrap(err, "marshal abi")
		}
	}

	var raw bytes.Buffer
	err := json.Compact(&raw, rawABI)
	if err != nil {
		return "", errors.Wrap(err, "compacting abi")
	}

	name := strcase.ToCamel(schema.ContractName)
	if !token.IsIdentifier(name) {
		return "", errors.Errorf("contract name %q has no Go identifier form", schema.ContractName)
	}

	module := goModule{
		Package: pkg,
		Name:    name,
		ABI:     strconv.Quote(raw.String()),
	}

	ids := make([]string, 0, len(schema.Networks))
	for id := range schema.Networks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		module.Networks = append(module.Networks, goNetwork{ID: id, Address: schema.Networks[id].Address})
	}

	// go-ethereum keys overloaded methods as name, name0, name1, ...
	overloads := map[string]int{}
	for _, f := range schema.Functions() {
		abiName := f.Name
		if n := overloads[f.Name]; n > 0 {
			abiName = f.Name + strconv.Itoa(n-1)
		}
		overloads[f.Name]++

		method := goMethod{
			GoName:  goMethodName(abiName),
			ABIName: abiName,
			Send:    f.StateMutability.IsSend(),
		}

		used := map[string]bool{}
		for i, p := range f.Inputs {
			typ, err := goType(p)
			if err != nil {
				return "", errors.Wrapf(err, "function %s: parameter %d", f.Name, i)
			}
			if strings.Contains(typ, "big.") {
				module.NeedsBig = true
			}

			name := goParamName(p.Name, i)
			if used[name] {
				name += strconv.Itoa(i)
			}
			used[name] = true
			method.Params = append(method.Params, goParam{Name: name, Type: typ})
		}
		module.Methods = append(module.Methods, method)
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, "contract.go.tmpl", module)
	if err != nil {
		return "", errors.Wrap(err, "executing go template")
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return "", errors.Wrap(err, "formatting source")
	}
	return string(out), nil
}

// goType is the Go type go-ethereum packs for the parameter's ABI type.
func goType(p Parameter) (string, error) {
	typ, err := abi.NewType(p.Type, "", argumentMarshaling(p.Components))
	if err != nil {
		return "", errors.Wrapf(err, "resolving type %q", p.Type)
	}
	return typ.GetType().String(), nil
}

func argumentMarshaling(components []Parameter) []abi.ArgumentMarshaling {
	if len(components) == 0 {
		return nil
	}
	out := make([]abi.ArgumentMarshaling, len(components))
	for i, c := range components {
		out[i] = abi.ArgumentMarshaling{
			Name:       c.Name,
			Type:       c.Type,
			Components: argumentMarshaling(c.Components),
		}
	}
	return out
}
