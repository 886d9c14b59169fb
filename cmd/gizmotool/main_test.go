package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in an isolated working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	for i, a := range args {
		if filepath.Ext(a) == ".yaml" && !filepath.IsAbs(a) {
			args[i] = filepath.Join(wd, a)
		}
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), err
}

func TestSimulate(t *testing.T) {
	out, err := execute(t, "simulate", "testdata/translate_x.yaml", "testdata/rotate_z.yaml")
	require.NoError(t, err, out)
	assert.Contains(t, out, "translate x snapped")
	assert.Contains(t, out, "rotate z quarter turn")
	assert.NotContains(t, out, "FAIL")
}

func TestSimulateReportsFailure(t *testing.T) {
	out, err := execute(t, "simulate", "testdata/wrong.yaml")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL")
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", "-o", "shot.png", "--width", "320", "--height", "240", "--cursor", "200,120")
	require.NoError(t, err, out)
	assert.Contains(t, out, "wrote shot.png")

	f, err := os.Open("shot.png")
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "config", "show", "--modes", "rotate")
	require.NoError(t, err)
	assert.Contains(t, out, "modes:")
	assert.Contains(t, out, "- rotate")
}
