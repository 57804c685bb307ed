package main

import (
	"github.com/sealworks/sealsdf/catalog"
	"github.com/sealworks/sealsdf/seal"
)

type propertyReport struct {
	Name    string  `yaml:"name" json:"name"`
	Symbol  string  `yaml:"symbol" json:"symbol"`
	Unit    string  `yaml:"unit" json:"unit"`
	Default float64 `yaml:"default" json:"default"`
	Tip     string  `yaml:"tip,omitempty" json:"tip,omitempty"`
}

type typeReport struct {
	ID          string           `yaml:"id" json:"id"`
	Label       string           `yaml:"label" json:"label"`
	Kind        string           `yaml:"kind" json:"kind"`
	Standard    string           `yaml:"standard,omitempty" json:"standard,omitempty"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
	UseCases    string           `yaml:"use_cases,omitempty" json:"use_cases,omitempty"`
	Properties  []propertyReport `yaml:"properties" json:"properties"`
	Sizes       int              `yaml:"sizes" json:"sizes"`
}

func newTypeReport(d catalog.Definition) typeReport {
	r := typeReport{
		ID:          d.ID,
		Label:       d.Label,
		Kind:        d.Kind.String(),
		Standard:    d.Standard,
		Description: d.Description,
		UseCases:    d.UseCases,
		Sizes:       d.Sizes.Len(),
	}
	for _, p := range d.Properties {
		r.Properties = append(r.Properties, propertyReport{
			Name:    p.Name,
			Symbol:  p.Short,
			Unit:    p.Unit.String(),
			Default: p.Default,
			Tip:     p.Tip,
		})
	}
	return r
}

type dimensionReport struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

type torusReport struct {
	Major float64 `yaml:"major" json:"major"`
	Minor float64 `yaml:"minor" json:"minor"`
}

type boundsReport struct {
	Min [3]float64 `yaml:"min,flow" json:"min"`
	Max [3]float64 `yaml:"max,flow" json:"max"`
}

// solidReport describes one built seal.
type solidReport struct {
	Type    string            `yaml:"type" json:"type"`
	Label   string            `yaml:"label" json:"label"`
	Size    string            `yaml:"size,omitempty" json:"size,omitempty"`
	Dims    []dimensionReport `yaml:"dimensions" json:"dimensions"`
	Empty   bool              `yaml:"empty" json:"empty"`
	Volume  float64           `yaml:"volume,omitempty" json:"volume,omitempty"`
	Bounds  *boundsReport     `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Torus   *torusReport      `yaml:"torus,omitempty" json:"torus,omitempty"`
	Profile [][2]float64      `yaml:"profile,omitempty,flow" json:"profile,omitempty"`
	Drawing string            `yaml:"drawing,omitempty" json:"drawing,omitempty"`
	Error   string            `yaml:"error,omitempty" json:"error,omitempty"`
}

func newSolidReport(d catalog.Definition, label string, sel catalog.Selection, s seal.Solid, points bool) solidReport {
	r := solidReport{
		Type:  d.ID,
		Label: label,
		Empty: s.IsEmpty(),
	}
	if !sel.IsCustom() {
		r.Size = sel.Designation()
	}
	for i, v := range s.Dims() {
		name := ""
		if i < len(d.Properties) {
			name = d.Properties[i].Name
		}
		r.Dims = append(r.Dims, dimensionReport{Name: name, Value: v})
	}
	if r.Empty {
		return r
	}
	r.Volume = s.Volume()
	bb := s.Bounds()
	r.Bounds = &boundsReport{
		Min: [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z},
		Max: [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z},
	}
	if major, minor, ok := s.Torus(); ok {
		r.Torus = &torusReport{Major: major, Minor: minor}
	}
	if points {
		for _, p := range s.Profile() {
			r.Profile = append(r.Profile, [2]float64{p.X, p.Y})
		}
	}
	return r
}
