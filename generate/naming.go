package generate

import (
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// arraySuffix matches one trailing dynamic or fixed-size array marker.
var arraySuffix = regexp.MustCompile(`\[[0-9]*\]$`)

// UpperFirst upper-cases the first character of s.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// stripArray removes every trailing array marker and returns the element
// tag with the number of removed dimensions.
func stripArray(rawType string) (string, int) {
	depth := 0
	for arraySuffix.MatchString(rawType) {
		rawType = arraySuffix.ReplaceAllString(rawType, "")
		depth++
	}
	return rawType, depth
}

// AliasName derives the alias a raw type tag is declared under, e.g.
// "uint256" -> "Uint256" and "address[]" -> "Address".
func AliasName(rawType string) string {
	elem, _ := stripArray(rawType)
	return UpperFirst(elem)
}

// SignatureType is the TypeScript type used for a parameter of rawType.
func SignatureType(rawType string) string {
	elem, depth := stripArray(rawType)
	return UpperFirst(elem) + strings.Repeat("[]", depth)
}

// ParamName drops the underscore prefix convention ("_owner" -> "owner").
// Only the first underscore is removed, as in previously generated modules.
func ParamName(raw string) string {
	return strings.Replace(raw, "_", "", 1)
}

// IsNumericAlias reports whether an alias stands for an integer that
// may be serialized as a number or a decimal string.
func IsNumericAlias(alias string) bool {
	return strings.HasPrefix(alias, "Uint")
}

func synthesizedName(i int) string {
	return "arg" + strconv.Itoa(i)
}

// goMethodName is the exported Go name of an ABI function.
func goMethodName(name string) string {
	return strcase.ToCamel(name)
}

// goParamName is a Go identifier for an ABI parameter.
func goParamName(raw string, i int) string {
	name := strcase.ToLowerCamel(strings.Trim(raw, "_"))
	if name == "" {
		return synthesizedName(i)
	}
	if token.IsKeyword(name) || reservedGoNames[name] {
		name += "_"
	}
	return name
}

// Identifiers the generated method bodies already use.
var reservedGoNames = map[string]bool{
	"c":           true,
	"abi":         true,
	"big":         true,
	"bind":        true,
	"common":      true,
	"contractgen": true,
	"method":      true,
}

// goFileName is the file a Go binding for contract is written to.
func goFileName(contract string) string {
	return strcase.ToSnake(contract) + ".go"
}
