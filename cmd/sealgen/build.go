package main

import (
	"errors"
	"fmt"

	"github.com/sealworks/sealsdf/catalog"
	"github.com/sealworks/sealsdf/drawing"
	"github.com/sealworks/sealsdf/seal"
	"github.com/spf13/cobra"
)

type selectFlags struct {
	size string
	dims []float64
}

func (f *selectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.size, "size", "s", "", "standard size designation, e.g. 10x2 or V-20A")
	cmd.Flags().Float64SliceVarP(&f.dims, "dim", "d", nil, "custom dimensions in property order; missing ones take the defaults")
}

func (f *selectFlags) selection() (catalog.Selection, error) {
	switch {
	case f.size != "" && f.size != catalog.CustomDesignation && len(f.dims) > 0:
		return catalog.Selection{}, errors.New("--size and --dim are mutually exclusive")
	case f.size == "" || f.size == catalog.CustomDesignation:
		return catalog.Custom(f.dims...), nil
	}
	return catalog.Standard(f.size), nil
}

func (a *app) buildCmd() *cobra.Command {
	var (
		sel    selectFlags
		points bool
		draw   string
		mirror bool
	)
	cmd := &cobra.Command{
		Use:   "build [type]",
		Short: "Build a seal and report its geometry",
		Long: `Build a seal of the given type from a standard size or from custom
dimensions and print its geometry. Dimensions that do not describe a
seal produce an empty body, reported with empty: true.`,
		Example: `  sealgen build oring --size 10x2
  sealgen build shaft_seal --dim 20,35,7 --points
  sealgen build vring -s V-20A --draw vring.png`,
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
			r, solid, err := a.build(d, s, points)
			if err != nil {
				return err
			}
			if r.Empty {
				a.logger.Warn("dimensions do not describe a seal", "type", d.ID, "dims", solid.Dims())
			}
			if draw != "" && !r.Empty {
				if err := a.draw(solid, r.Label, draw, mirror); err != nil {
					return err
				}
				r.Drawing = draw
			}
			return a.print(r)
		},
	}
	sel.register(cmd)
	cmd.Flags().BoolVar(&points, "points", false, "include the meridian profile points")
	cmd.Flags().StringVar(&draw, "draw", "", "write a section drawing to `file` (png, svg, pdf, ...)")
	cmd.Flags().BoolVar(&mirror, "mirror", true, "draw the section on both sides of the axis")
	return cmd
}

func (a *app) build(d catalog.Definition, sel catalog.Selection, points bool) (solidReport, seal.Solid, error) {
	dims, err := a.catalog.Dimensions(d.ID, sel)
	if err != nil {
		return solidReport{}, seal.Solid{}, err
	}
	solid, err := a.catalog.BuildSolid(d.ID, dims)
	if err != nil {
		return solidReport{}, seal.Solid{}, err
	}
	label, err := a.catalog.Label(d.ID, sel, dims)
	if err != nil {
		return solidReport{}, seal.Solid{}, err
	}
	return newSolidReport(d, label, sel, solid, points), solid, nil
}

func (a *app) draw(s seal.Solid, title, path string, mirror bool) error {
	p, err := drawing.Section(s, drawing.Options{Title: title, Mirror: mirror})
	if err != nil {
		return err
	}
	if err := drawing.Save(p, path, a.drawWidth, a.drawHeight); err != nil {
		return fmt.Errorf("draw %s: %w", path, err)
	}
	a.logger.Debug("wrote drawing", "file", path)
	return nil
}
