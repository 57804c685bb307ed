package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sealworks/sealsdf/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfg     *viper.Viper
	logger  *slog.Logger
	catalog *catalog.Catalog
	stdout  io.Writer

	// Drawing size in points, read once so that batch workers do not
	// touch the configuration.
	drawWidth, drawHeight vg.Length
}

func rootCmd() *cobra.Command {
	a := &app{cfg: viper.New()}
	var configPath string
	cmd := &cobra.Command{
		Use:   "sealgen",
		Short: "Generate mechanical seal geometry",
		Long: `Sealgen builds the bodies of mechanical seals from a handful of
dimensions, typed in directly or looked up by standard designation.

Supported types: O-rings (DIN 3771), radial shaft seals (DIN 3760),
type A V-rings and bonded Usit rings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, configPath)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default: ./sealgen.yaml or ~/.config/sealgen/sealgen.yaml)")
	flags.String("data-dir", "", "directory of size table CSV files replacing the built-in tables")
	flags.StringP("format", "f", "yaml", "output format (yaml, json)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = a.cfg.BindPFlag(keyDataDir, flags.Lookup("data-dir"))
	_ = a.cfg.BindPFlag(keyOutputFormat, flags.Lookup("format"))
	_ = a.cfg.BindPFlag(keyLogLevel, flags.Lookup("log-level"))

	cmd.AddCommand(a.typesCmd(), a.sizesCmd(), a.profileCmd(), a.buildCmd(), a.batchCmd())
	return cmd
}

func (a *app) setup(cmd *cobra.Command, configPath string) error {
	if err := loadConfig(a.cfg, configPath); err != nil {
		return err
	}
	a.stdout = cmd.OutOrStdout()
	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.GetString(keyLogLevel))
	a.drawWidth = vg.Length(a.cfg.GetFloat64(keyDrawingWidth))
	a.drawHeight = vg.Length(a.cfg.GetFloat64(keyDrawingHeight))
	if a.drawWidth <= 0 || a.drawHeight <= 0 {
		return fmt.Errorf("invalid drawing size %vx%v", a.drawWidth, a.drawHeight)
	}

	opts := []catalog.Option{catalog.WithLogger(a.logger)}
	if dir := a.cfg.GetString(keyDataDir); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("data dir: %w", err)
		}
		opts = append(opts, catalog.WithSource(os.DirFS(dir)))
		a.logger.Debug("reading size tables", "dir", dir)
	}
	c, err := catalog.New(catalog.Builtin(opts...)...)
	if err != nil {
		return err
	}
	a.catalog = c
	return nil
}

// definition resolves the type argument of a command. Without one the
// configured default type is used, and without that the first registered type.
func (a *app) definition(args []string) (catalog.Definition, error) {
	id := a.cfg.GetString(keyDefaultType)
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" {
		defs := a.catalog.List()
		if len(defs) == 0 {
			return catalog.Definition{}, fmt.Errorf("%w: catalog is empty", catalog.ErrUnknownType)
		}
		return defs[0], nil
	}
	return a.catalog.Resolve(id)
}

// print writes v to the command output in the configured format.
func (a *app) print(v any) error {
	return encode(a.stdout, a.cfg.GetString(keyOutputFormat), v)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown output format %q (valid: yaml, json)", format)
}
