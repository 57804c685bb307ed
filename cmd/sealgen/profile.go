package main

import (
	"github.com/sealworks/sealsdf/seal"
	"github.com/spf13/cobra"
)

type profileReport struct {
	Type   string            `yaml:"type" json:"type"`
	Label  string            `yaml:"label" json:"label"`
	Dims   []dimensionReport `yaml:"dimensions" json:"dimensions"`
	Valid  bool              `yaml:"valid" json:"valid"`
	Torus  *torusReport      `yaml:"torus,omitempty" json:"torus,omitempty"`
	Points [][2]float64      `yaml:"points,omitempty,flow" json:"points,omitempty"`
	Area   float64           `yaml:"area,omitempty" json:"area,omitempty"`
}

func (a *app) profileCmd() *cobra.Command {
	var sel selectFlags
	cmd := &cobra.Command{
		Use:   "profile [type]",
		Short: "Print the cross-section of a seal without building it",
		Long: `Print the resolved dimensions and the closed meridian cross-section of a
seal. X is the distance from the axis and Y the axial position. O-rings
have no cross-section polygon; their torus radii are printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.definition(args)
			if err != nil {
				return err
			}
			s, err := sel.selection()
			if err != nil {
				return err
			}
			dims, err := a.catalog.Dimensions(d.ID, s)
			if err != nil {
				return err
			}
			b, err := seal.New(d.Kind, dims)
			if err != nil {
				return err
			}
			label, err := a.catalog.Label(d.ID, s, dims)
			if err != nil {
				return err
			}
			r := profileReport{Type: d.ID, Label: label, Valid: b.Valid()}
			for i, v := range dims {
				r.Dims = append(r.Dims, dimensionReport{Name: d.Properties[i].Name, Value: v})
			}
			if !r.Valid {
				a.logger.Warn("dimensions do not describe a seal", "type", d.ID, "dims", dims)
				return a.print(r)
			}
			switch b := b.(type) {
			case seal.TorusBuilder:
				major, minor := b.Radii()
				r.Torus = &torusReport{Major: major, Minor: minor}
			case seal.ProfileBuilder:
				p := b.Profile()
				for _, v := range p {
					r.Points = append(r.Points, [2]float64{v.X, v.Y})
				}
				r.Area = p.Area()
			}
			return a.print(r)
		},
	}
	sel.register(cmd)
	return cmd
}
