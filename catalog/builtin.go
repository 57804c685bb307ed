package catalog

import (
	"embed"
	"io/fs"
	"log/slog"

	"github.com/sealworks/sealsdf/seal"
)

//go:embed data/*.csv
var embedded embed.FS

// Option configures Builtin.
type Option func(*options)

type options struct {
	source fs.FS
	logger *slog.Logger
}

// WithSource reads the size tables from fsys instead of the embedded data,
// for example os.DirFS of a directory of CSV files. Files are looked up
// by base name.
func WithSource(fsys fs.FS) Option {
	return func(o *options) { o.source = fsys }
}

// WithLogger sets the logger that receives table loading warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Builtin returns the definitions of the O-ring, shaft seal, V-ring and
// Usit ring types with their size tables loaded. Missing or malformed table
// data is logged as a warning and leaves the affected table incomplete.
func Builtin(opts ...Option) []Definition {
	o := options{logger: slog.Default()}
	if sub, err := fs.Sub(embedded, "data"); err == nil {
		o.source = sub
	}
	for _, opt := range opts {
		opt(&o)
	}
	defs := builtinDefinitions()
	for i := range defs {
		def := &defs[i]
		def.Sizes = loadTable(o, def.ID, builtinFiles[def.ID], len(def.Properties))
	}
	return defs
}

var builtinFiles = map[string]string{
	"oring":      "din_3771.csv",
	"shaft_seal": "din_3760.csv",
	"vring":      "vring_type_a.csv",
	"usit":       "usit_ring.csv",
}

func loadTable(o options, id, file string, arity int) *SizeTable {
	f, err := o.source.Open(file)
	if err != nil {
		o.logger.Warn("size table unavailable", "type", id, "file", file, "err", err)
		return NewSizeTable(nil)
	}
	defer f.Close()
	t, warnings := ReadSizeTable(f, file, arity)
	for _, w := range warnings {
		attrs := []any{"type", id, "file", file, "err", w}
		if lw, ok := w.(*LoadWarning); ok {
			attrs = append(attrs, "line", lw.Line)
		}
		o.logger.Warn("skipped size table data", attrs...)
	}
	o.logger.Debug("loaded size table", "type", id, "file", file, "sizes", t.Len())
	return t
}

var (
	innerDiameter = Property{Name: "InnerDiameter", Short: "d1", Unit: Length, Tip: "Inner diameter of the shaft/groove interface."}
	outerDiameter = Property{Name: "OuterDiameter", Short: "d2", Unit: Length, Tip: "Outer diameter of the seal body."}
)

func with(p Property, def float64) Property {
	p.Default = def
	return p
}

func builtinDefinitions() []Definition {
	return []Definition{
		{
			ID:          "oring",
			Kind:        seal.KindORing,
			Label:       "O-Ring (DIN 3771)",
			ObjectName:  "ORing",
			Standard:    "DIN 3771",
			Description: "Round elastomer ring for static and dynamic sealing in grooves.",
			UseCases:    "General sealing; shafts and bores; hydraulic and pneumatic applications.",
			Properties: []Property{
				with(innerDiameter, 10),
				{Name: "CordDiameter", Short: "d2", Unit: Length, Default: 2, Tip: "Cord thickness of the O-Ring."},
			},
		},
		{
			ID:          "shaft_seal",
			Kind:        seal.KindShaftSeal,
			Label:       "Shaft Seal (DIN 3760)",
			ObjectName:  "ShaftSeal",
			Standard:    "DIN 3760",
			Description: "Radial shaft seal with metal case and elastomer lip for rotating shafts.",
			UseCases:    "Rotating shafts; oil retention; dust exclusion.",
			Properties: []Property{
				with(innerDiameter, 20),
				with(outerDiameter, 40),
				{Name: "Width", Short: "b", Unit: Length, Default: 7, Tip: "Axial width of the shaft seal."},
			},
		},
		{
			ID:          "vring",
			Kind:        seal.KindVRing,
			Label:       "V-Ring (Type A)",
			ObjectName:  "VRing",
			Standard:    "Type A",
			Description: "All-rubber axial shaft seal with flexible lip running on the counterface.",
			UseCases:    "Light contamination protection; grease retention; low friction axial sealing.",
			Properties: []Property{
				{Name: "ShaftDiameter", Short: "d1", Unit: Length, Default: 20, Tip: "Diameter of the shaft the ring is stretched onto."},
				{Name: "SectionWidth", Short: "A", Unit: Length, Default: 5, Tip: "Cross-section width of the V-Ring body."},
				{Name: "SectionHeight", Short: "C", Unit: Length, Default: 6, Tip: "Overall height of the V-Ring including the lip."},
			},
		},
		{
			ID:          "usit",
			Kind:        seal.KindUsit,
			Label:       "Usit-Ring (Bonded Seal)",
			ObjectName:  "UsitRing",
			Standard:    "Bonded seal",
			Description: "Metal washer with vulcanized sealing lip for high-pressure flange connections.",
			UseCases:    "Static sealing of bolt/flange connections; hydraulic fittings; banjo bolts.",
			Properties: []Property{
				with(innerDiameter, 10),
				with(outerDiameter, 16),
				{Name: "Thickness", Short: "s", Unit: Length, Default: 1.5, Tip: "Washer thickness of the bonded seal."},
				{Name: "LipHeight", Short: "h", Unit: Length, Default: 2, Tip: "Height of the elastomer sealing lip."},
			},
		},
	}
}
