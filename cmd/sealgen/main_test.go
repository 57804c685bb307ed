package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sealworks/sealsdf/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes sealgen with args against an empty config file so that no
// user configuration leaks into the test.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "sealgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: warn\n"), 0o644))
	return runWithConfig(t, cfg, args...)
}

func runWithConfig(t *testing.T, cfg string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTypes(t *testing.T) {
	out, _, err := run(t, "types", "--format", "json")
	require.NoError(t, err)

	var types []typeReport
	require.NoError(t, json.Unmarshal([]byte(out), &types))
	require.Len(t, types, 4)
	ids := []string{types[0].ID, types[1].ID, types[2].ID, types[3].ID}
	assert.Equal(t, []string{"oring", "shaft_seal", "vring", "usit"}, ids)
	assert.Equal(t, "ORing", types[0].Kind)
	require.Len(t, types[0].Properties, 2)
	assert.Equal(t, "d2", types[0].Properties[1].Symbol)
	assert.Equal(t, "mm", types[0].Properties[1].Unit)
	assert.Positive(t, types[0].Sizes)
}

func TestSizes(t *testing.T) {
	out, _, err := run(t, "sizes", "usit")
	require.NoError(t, err)

	var sizes []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &sizes))
	require.NotEmpty(t, sizes)
	assert.Equal(t, catalog.CustomDesignation, sizes[0])
	assert.Equal(t, []string{"U-5", "U-6", "U-8", "U-10"}, sizes[1:5])
}

func TestSizesByLabel(t *testing.T) {
	out, _, err := run(t, "sizes", "V-Ring (Type A)")
	require.NoError(t, err)
	assert.Contains(t, out, "V-20A")
}

func TestBuildStandardORing(t *testing.T) {
	out, _, err := run(t, "build", "oring", "--size", "10x2")
	require.NoError(t, err)

	var r solidReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "oring", r.Type)
	assert.Equal(t, "O-Ring (DIN 3771) 10x2", r.Label)
	assert.Equal(t, "10x2", r.Size)
	assert.False(t, r.Empty)
	require.NotNil(t, r.Torus)
	assert.InDelta(t, 6, r.Torus.Major, 1e-12)
	assert.InDelta(t, 1, r.Torus.Minor, 1e-12)
	assert.Empty(t, r.Profile)
}

func TestBuildCustomProfile(t *testing.T) {
	out, _, err := run(t, "build", "vring", "--dim", "10,4,5", "--points", "-f", "json")
	require.NoError(t, err)

	var r solidReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "V-Ring (Type A) 10x4x5", r.Label)
	assert.Empty(t, r.Size)
	require.Len(t, r.Dims, 3)
	assert.Equal(t, "SectionWidth", r.Dims[1].Name)
	assert.Len(t, r.Profile, 7)
	assert.Equal(t, r.Profile[0], r.Profile[len(r.Profile)-1])
	assert.Positive(t, r.Volume)
	require.NotNil(t, r.Bounds)
	assert.Nil(t, r.Torus)
}

func TestBuildInvalidDimensionsIsEmpty(t *testing.T) {
	out, stderr, err := run(t, "build", "shaft_seal", "--dim", "20,15,5")
	require.NoError(t, err)

	var r solidReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.True(t, r.Empty)
	assert.Zero(t, r.Volume)
	assert.Nil(t, r.Bounds)
	assert.Contains(t, stderr, "dimensions do not describe a seal")
}

func TestBuildErrors(t *testing.T) {
	_, _, err := run(t, "build", "bogus")
	assert.ErrorIs(t, err, catalog.ErrUnknownType)

	_, _, err = run(t, "build", "oring", "--size", "1x1")
	assert.ErrorIs(t, err, catalog.ErrUnknownSize)

	_, _, err = run(t, "build", "oring", "--size", "10x2", "--dim", "3")
	assert.Error(t, err)

	_, _, err = run(t, "build", "oring", "--dim", "1,2,3")
	assert.Error(t, err)

	_, _, err = run(t, "build", "oring", "-f", "toml")
	assert.Error(t, err)
}

func TestBuildDraw(t *testing.T) {
	png := filepath.Join(t.TempDir(), "vring.png")
	out, _, err := run(t, "build", "vring", "-s", "V-20A", "--draw", png)
	require.NoError(t, err)

	var r solidReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, png, r.Drawing)
	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestDefaultType(t *testing.T) {
	out, _, err := run(t, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "type: oring")

	cfg := filepath.Join(t.TempDir(), "sealgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("default_type: usit\n"), 0o644))
	out, _, err = runWithConfig(t, cfg, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "type: usit")
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("SEALGEN_OUTPUT_FORMAT", "json")
	out, _, err := run(t, "sizes", "oring")
	require.NoError(t, err)

	var sizes []string
	require.NoError(t, json.Unmarshal([]byte(out), &sizes))
	assert.Contains(t, sizes, "10x2")
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := runWithConfig(t, filepath.Join(t.TempDir(), "missing.yaml"), "types")
	assert.Error(t, err)
}

func TestDataDir(t *testing.T) {
	dir := t.TempDir()
	csv := "name,d1,d2\nsmall,4,1\nlarge,40,3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "din_3771.csv"), []byte(csv), 0o644))

	out, stderr, err := run(t, "sizes", "oring", "--data-dir", dir)
	require.NoError(t, err)
	var sizes []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &sizes))
	assert.Equal(t, []string{catalog.CustomDesignation, "large", "small"}, sizes)
	// The other tables are missing from dir.
	assert.Contains(t, stderr, "size table unavailable")

	_, _, err = run(t, "types", "--data-dir", filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, "batch", "usit", "--out", dir, "--ext", "svg")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "report.yaml"))
	require.NoError(t, err)
	var r batchReport
	require.NoError(t, yaml.Unmarshal(b, &r))
	assert.Equal(t, "usit", r.Type)

	sizes, _, err := run(t, "sizes", "usit")
	require.NoError(t, err)
	var names []string
	require.NoError(t, yaml.Unmarshal([]byte(sizes), &names))
	require.Len(t, r.Seals, len(names)-1)

	for i, s := range r.Seals {
		assert.Equal(t, names[i+1], s.Size)
		assert.False(t, s.Empty, s.Size)
		assert.FileExists(t, filepath.Join(dir, s.Drawing))
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "10x2.5", fileName("10x2.5"))
	assert.Equal(t, "A_B_C", fileName("A/B C"))
}

func TestProfile(t *testing.T) {
	out, _, err := run(t, "profile", "shaft_seal", "--size", "20x35x7")
	require.NoError(t, err)

	var r profileReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.True(t, r.Valid)
	assert.Equal(t, "Shaft Seal (DIN 3760) 20x35x7", r.Label)
	require.Len(t, r.Points, 20)
	assert.Equal(t, r.Points[0], r.Points[19])
	assert.Positive(t, r.Area)
	for _, p := range r.Points {
		assert.GreaterOrEqual(t, p[0], 10.0-1e-9)
		assert.LessOrEqual(t, p[0], 17.5+1e-9)
		assert.GreaterOrEqual(t, p[1], -1e-9)
		assert.LessOrEqual(t, p[1], 7+1e-9)
	}

	out, _, err = run(t, "profile", "oring")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.NotNil(t, r.Torus)
	assert.InDelta(t, 6, r.Torus.Major, 1e-12)

	out, _, err = run(t, "profile", "usit", "--dim", "10,8")
	require.NoError(t, err)
	r = profileReport{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.False(t, r.Valid)
	assert.Empty(t, r.Points)
}

func TestBatchRecordsFailedSizes(t *testing.T) {
	data := t.TempDir()
	csv := "name,d1,d2,s,h\nU-10,10.7,16,1.5,2\nU-thin,10,10.2,1,1\nU-text,10,16,n/a,2\n"
	require.NoError(t, os.WriteFile(filepath.Join(data, "usit_ring.csv"), []byte(csv), 0o644))

	dir := t.TempDir()
	_, stderr, err := run(t, "batch", "usit", "--data-dir", data, "--out", dir, "--ext", "svg")
	require.NoError(t, err)
	assert.Contains(t, stderr, "standard size could not be built")

	b, err := os.ReadFile(filepath.Join(dir, "report.yaml"))
	require.NoError(t, err)
	var r batchReport
	require.NoError(t, yaml.Unmarshal(b, &r))
	require.Len(t, r.Seals, 3)

	bySize := make(map[string]solidReport)
	for _, s := range r.Seals {
		bySize[s.Size] = s
	}
	ok := bySize["U-10"]
	assert.Empty(t, ok.Error)
	assert.FileExists(t, filepath.Join(dir, ok.Drawing))

	for _, name := range []string{"U-thin", "U-text"} {
		s := bySize[name]
		assert.NotEmpty(t, s.Error, name)
		assert.Empty(t, s.Drawing, name)
	}
	assert.Contains(t, bySize["U-text"].Error, "non-numeric")
}
