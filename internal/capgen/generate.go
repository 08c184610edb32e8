// Package capgen generates Capability implementations for marker types.
package capgen

import (
	"fmt"
	"go/token"
	"io"
	"strings"

	. "github.com/dave/jennifer/jen"
)

const capabilityPkg = "github.com/reglet-dev/reglet-capability-sdk/capability"

// Declaration binds a Go type name to a capability identifier.
type Declaration struct {
	Type string
	ID   string
}

// ParseDeclaration parses "TypeName=capability.id".
func ParseDeclaration(s string) (Declaration, error) {
	typeName, id, ok := strings.Cut(s, "=")
	if !ok {
		return Declaration{}, fmt.Errorf("declaration %q: expected Type=id", s)
	}
	d := Declaration{Type: strings.TrimSpace(typeName), ID: strings.TrimSpace(id)}
	return d, d.Validate()
}

// Validate checks the type name is an identifier and the ID is non-empty.
func (d Declaration) Validate() error {
	if !token.IsIdentifier(d.Type) {
		return fmt.Errorf("invalid type name %q", d.Type)
	}
	if d.ID == "" {
		return fmt.Errorf("type %s: capability id cannot be empty", d.Type)
	}
	return nil
}

// Generate writes a Go file in package pkg implementing capability.Capability
// for every declaration: ID returns the literal and Concrete returns the
// receiver.
func Generate(w io.Writer, pkg string, decls []Declaration) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("invalid package name %q", pkg)
	}
	if len(decls) == 0 {
		return fmt.Errorf("no declarations")
	}

	seen := make(map[string]bool, len(decls))
	f := NewFile(pkg)
	f.HeaderComment("Code generated by capgen. DO NOT EDIT.")

	for _, d := range decls {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Type] {
			return fmt.Errorf("type %s declared more than once", d.Type)
		}
		seen[d.Type] = true

		f.Var().Id("_").Qual(capabilityPkg, "Capability").Op("=").Parens(Op("*").Id(d.Type)).Call(Nil())

		f.Commentf("ID returns %q.", d.ID)
		f.Func().Params(Op("*").Id(d.Type)).Id("ID").Params().String().Block(
			Return(Lit(d.ID)),
		)

		f.Comment("Concrete returns the receiver.")
		f.Func().Params(Id("c").Op("*").Id(d.Type)).Id("Concrete").Params().Interface().Block(
			Return(Id("c")),
		)
	}

	return f.Render(w)
}
