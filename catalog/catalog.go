// Package catalog holds the seal type definitions and their standard size
// tables, and resolves a type and size selection into a seal body.
//
// A Catalog is immutable once constructed and safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sealworks/sealsdf/seal"
)

var (
	// ErrUnknownType is returned for type ids that are neither registered
	// nor a legacy label of a registered type.
	ErrUnknownType = errors.New("catalog: unknown seal type")
	// ErrUnknownSize is returned for designations missing from a size table.
	ErrUnknownSize = errors.New("catalog: unknown standard size")
	// ErrNonNumeric is returned when a standard size row holds text where
	// a dimension is expected.
	ErrNonNumeric = errors.New("catalog: non-numeric dimension")
)

// Unit is the physical quantity of a property.
type Unit uint8

const (
	// Length in millimetres.
	Length Unit = iota + 1
)

func (u Unit) String() string {
	if u == Length {
		return "mm"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// Property describes one dimension of a seal type.
type Property struct {
	Name    string // e.g. InnerDiameter
	Short   string // symbol used in standards, e.g. d1
	Unit    Unit
	Default float64
	Tip     string
}

// Definition is a seal type of the catalog.
type Definition struct {
	// ID is the stable identifier of the type, e.g. "oring".
	ID   string
	Kind seal.Kind
	// Label is the human readable name, e.g. "O-Ring (DIN 3771)". Labels
	// were stored in place of ids by older data and resolve as aliases.
	Label string
	// LegacyLabels are further aliases that resolve to this type.
	LegacyLabels []string
	// ObjectName is the base name of objects created from this type.
	ObjectName  string
	Standard    string
	Description string
	UseCases    string
	// Properties lists the dimensions in the order of seal.Dims.
	Properties []Property
	Sizes      *SizeTable
}

// Defaults returns the default dimensions of the type.
func (d Definition) Defaults() seal.Dims {
	dims := make(seal.Dims, len(d.Properties))
	for i, p := range d.Properties {
		dims[i] = p.Default
	}
	return dims
}

// clone returns a copy of d sharing no slices with it. Size tables are
// immutable and stay shared.
func (d Definition) clone() Definition {
	d.Properties = append([]Property(nil), d.Properties...)
	d.LegacyLabels = append([]string(nil), d.LegacyLabels...)
	return d
}

// Catalog is a registry of seal type definitions. Definitions are copied
// on the way in and on the way out.
type Catalog struct {
	defs    []Definition
	byID    map[string]int
	aliases map[string]string
}

// New registers defs in order. Ids and labels must be unique and the
// property list of every definition must match the arity of its Kind.
func New(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]int, len(defs)),
		aliases: make(map[string]string),
	}
	for i := range defs {
		if err := c.register(defs[i]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) register(def Definition) error {
	_, dup := c.byID[def.ID]
	switch {
	case def.ID == "":
		return errors.New("catalog: definition without id")
	case dup:
		return fmt.Errorf("catalog: type %q registered twice", def.ID)
	case def.Kind.Arity() == 0:
		return fmt.Errorf("catalog: type %q has undefined kind %v", def.ID, def.Kind)
	case len(def.Properties) != def.Kind.Arity():
		return fmt.Errorf("catalog: type %q lists %d properties, %v takes %d",
			def.ID, len(def.Properties), def.Kind, def.Kind.Arity())
	}
	def = def.clone()
	if def.Sizes == nil {
		def.Sizes = NewSizeTable(nil)
	}
	for _, alias := range append([]string{def.Label}, def.LegacyLabels...) {
		if alias == "" {
			continue
		}
		if id, ok := c.aliases[alias]; ok && id != def.ID {
			return fmt.Errorf("catalog: label %q of %q already names %q", alias, def.ID, id)
		}
		c.aliases[alias] = def.ID
	}
	c.byID[def.ID] = len(c.defs)
	c.defs = append(c.defs, def)
	return nil
}

// Lookup returns a copy of the definition registered under id. It does
// not resolve legacy labels, see Resolve.
func (c *Catalog) Lookup(id string) (Definition, error) {
	if i, ok := c.byID[id]; ok {
		return c.defs[i].clone(), nil
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownType, id)
}

// ResolveLegacyAlias returns the id of the type whose label or legacy
// label is label.
func (c *Catalog) ResolveLegacyAlias(label string) (string, error) {
	if id, ok := c.aliases[label]; ok {
		return id, nil
	}
	return "", fmt.Errorf("%w: no type labelled %q", ErrUnknownType, label)
}

// Resolve looks up idOrLabel as an id and then as a legacy label and
// returns a copy of the definition.
func (c *Catalog) Resolve(idOrLabel string) (Definition, error) {
	d, err := c.resolve(idOrLabel)
	if err != nil {
		return Definition{}, err
	}
	return d.clone(), nil
}

// resolve returns the stored definition. Callers must not modify it.
func (c *Catalog) resolve(idOrLabel string) (*Definition, error) {
	if i, ok := c.byID[idOrLabel]; ok {
		return &c.defs[i], nil
	}
	if id, ok := c.aliases[idOrLabel]; ok {
		return &c.defs[c.byID[id]], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, idOrLabel)
}

// List returns a copy of every definition in registration order.
func (c *Catalog) List() []Definition {
	defs := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		defs[i] = d.clone()
	}
	return defs
}

// CustomDesignation is the entry of ListStandardSizes that stands for
// caller supplied dimensions.
const CustomDesignation = "Custom"

// ListStandardSizes returns the standard size designations of a type in
// natural order, preceded by CustomDesignation.
func (c *Catalog) ListStandardSizes(idOrLabel string) ([]string, error) {
	d, err := c.resolve(idOrLabel)
	if err != nil {
		return nil, err
	}
	return append([]string{CustomDesignation}, d.Sizes.Names()...), nil
}

// BuildSolid builds the body of type idOrLabel from dims, which must have
// one value per property of the type. Rejected dimensions yield an empty
// solid, not an error.
func (c *Catalog) BuildSolid(idOrLabel string, dims seal.Dims) (seal.Solid, error) {
	d, err := c.resolve(idOrLabel)
	if err != nil {
		return seal.Solid{}, err
	}
	return seal.BuildDims(d.Kind, dims)
}

// Build resolves sel against type idOrLabel and builds the body.
func (c *Catalog) Build(idOrLabel string, sel Selection) (seal.Solid, error) {
	dims, err := c.Dimensions(idOrLabel, sel)
	if err != nil {
		return seal.Solid{}, err
	}
	return c.BuildSolid(idOrLabel, dims)
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return New(Builtin()...)
})

// Default returns the catalog of built-in seal types, constructing it on
// first use. Table problems are logged with slog.Default.
func Default() (*Catalog, error) {
	return defaultCatalog()
}
