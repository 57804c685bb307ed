package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sealworks/sealsdf/catalog"
	"github.com/sealworks/sealsdf/seal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batchReport is written next to the drawings of a batch run.
type batchReport struct {
	Type      string        `yaml:"type" json:"type"`
	Generated time.Time     `yaml:"generated" json:"generated"`
	Seals     []solidReport `yaml:"seals" json:"seals"`
}

func (a *app) batchCmd() *cobra.Command {
	var (
		out    string
		ext    string
		points bool
	)
	cmd := &cobra.Command{
		Use:   "batch [type]",
		Short: "Build and draw every standard size of a seal type",
		Long: `Build every standard size of a seal type concurrently, write one section
drawing per size into the output directory and a report of all sizes.
A size whose table data cannot be built is recorded with its error in the
report and does not stop the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.definition(args)
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.GetString(keyOutputDir)
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			format := a.cfg.GetString(keyOutputFormat)
			names := d.Sizes.Names()
			reports := make([]solidReport, len(names))

			workers := a.cfg.GetInt(keyWorkers)
			if workers < 1 {
				workers = 1
			}
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i, name := range names {
				i, name := i, name
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					r, solid, err := a.build(d, catalog.Standard(name), points)
					var geomErr *seal.GeometryError
					switch {
					case errors.As(err, &geomErr), errors.Is(err, catalog.ErrNonNumeric):
						// Bad table data fails its own size only.
						a.logger.Warn("standard size could not be built", "type", d.ID, "size", name, "err", err)
						reports[i] = solidReport{Type: d.ID, Size: name, Error: err.Error()}
						return nil
					case err != nil:
						return fmt.Errorf("%s %s: %w", d.ID, name, err)
					}
					if !r.Empty {
						r.Drawing = fileName(name) + "." + ext
						if err := a.draw(solid, r.Label, filepath.Join(out, r.Drawing), true); err != nil {
							return err
						}
					} else {
						a.logger.Warn("standard size does not describe a seal", "type", d.ID, "size", name)
					}
					reports[i] = r
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			path := filepath.Join(out, "report."+format)
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			err = encode(f, format, batchReport{Type: d.ID, Generated: time.Now().UTC(), Seals: reports})
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			failed := 0
			for _, r := range reports {
				if r.Error != "" {
					failed++
				}
			}
			a.logger.Info("batch complete", "type", d.ID, "sizes", len(names), "failed", failed, "dir", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default from output.dir)")
	cmd.Flags().StringVar(&ext, "ext", "png", "drawing file format")
	cmd.Flags().BoolVar(&points, "points", false, "include the meridian profile points in the report")
	return cmd
}

// fileName turns a size designation into a portable file name.
func fileName(designation string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, designation)
}
