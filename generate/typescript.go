package generate

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.New("generate").ParseFS(templatesFS, "templates/*.tmpl"))

// Emitter renders the wrapper module for one schema.
type Emitter interface {
	Emit(schema *Schema) (string, error)
}

var _ Emitter = (*TypeScriptEmitter)(nil)

// TypeScriptEmitter renders web3.js wrapper classes.
type TypeScriptEmitter struct {
	// SynthesizeNames names unnamed parameters arg<i> in both the signature
	// and the call. When false, an unnamed parameter is left out of the
	// signature but still passed positionally, which matches modules
	// generated before the option existed.
	SynthesizeNames bool
}

type tsAlias struct {
	Name string
	Type string
}

type tsMethod struct {
	Name      string
	Signature string
	Arguments string
	Send      bool
}

type tsModule struct {
	Name    string
	Aliases []tsAlias
	Methods []tsMethod
}

func (e *TypeScriptEmitter) Emit(schema *Schema) (string, error) {
	if schema == nil {
		return "", errors.New("nil schema")
	}

	functions := schema.Functions()
	aliases := CollectTypes(functions)

	module := tsModule{Name: schema.ContractName}
	for _, name := range aliases.Names() {
		alias := tsAlias{Name: name, Type: "string"}
		if IsNumericAlias(name) {
			alias.Type = "number | string"
		}
		module.Aliases = append(module.Aliases, alias)
	}

	for _, f := range functions {
		module.Methods = append(module.Methods, e.method(f))
	}

	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "contract.ts.tmpl", module)
	if err != nil {
		return "", errors.Wrap(err, "executing typescript template")
	}
	return buf.String(), nil
}

func (e *TypeScriptEmitter) method(f Member) tsMethod {
	params := make([]string, 0, len(f.Inputs))
	args := make([]string, 0, len(f.Inputs))
	for i, p := range f.Inputs {
		name := ParamName(p.Name)
		if name == "" && e.SynthesizeNames {
			name = synthesizedName(i)
		}
		typ := SignatureType(p.Type)

		args = append(args, name)
		if name == "" || typ == "" {
			continue
		}
		params = append(params, name+": "+typ)
	}

	return tsMethod{
		Name:      f.Name,
		Signature: strings.Join(params, ", "),
		Arguments: strings.Join(args, ", "),
		Send:      f.StateMutability.IsSend(),
	}
}

// RenderBase renders the runtime support file generated modules import.
func RenderBase(networkID string) (string, error) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "base.ts.tmpl", map[string]string{
		"NetworkID": networkID,
	})
	if err != nil {
		return "", errors.Wrap(err, "executing base template")
	}
	return buf.String(), nil
}
