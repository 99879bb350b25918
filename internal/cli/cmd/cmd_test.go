package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/geom"
	"github.com/bnema/dockyard/internal/frontend/headless"
	"github.com/bnema/dockyard/internal/frontend/x11"
	"github.com/bnema/dockyard/internal/ui/view"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configFile, logLevel, simulateYAML = "", "", false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.toml")
}

func TestConfigPrint_Defaults(t *testing.T) {
	out, stderr, err := execute(t, "--config", missingConfig(t), "config", "print")
	require.NoError(t, err)

	assert.Contains(t, out, "threshold: 4")
	assert.Contains(t, out, "type: classic")
	assert.Contains(t, stderr, "defaults")
}

func TestConfigPrint_FromFile(t *testing.T) {
	path := writeFile(t, "config.toml", "[indicators]\ntype = \"segmented\"\n")

	out, stderr, err := execute(t, "--config", path, "config", "print")
	require.NoError(t, err)
	assert.Contains(t, out, "type: segmented")
	assert.Contains(t, stderr, path)
}

func TestConfigValidate(t *testing.T) {
	valid := writeFile(t, "config.toml", "[drag]\nthreshold = 8\n")
	out, _, err := execute(t, "--config", valid, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	invalid := writeFile(t, "config.toml", "[drag]\nthreshold = 0\n[indicators]\nhot_band = 0\n")
	_, stderr, err := execute(t, "--config", invalid, "config", "validate")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "drag.threshold must be at least 1")
	assert.Contains(t, stderr, "indicators.hot_band must be at least 1")
}

func TestConfigSchema(t *testing.T) {
	out, _, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "Dockyard Configuration")
	assert.Contains(t, out, "hot_band")
}

func TestInvalidLogLevelFailsInit(t *testing.T) {
	_, _, err := execute(t, "--config", missingConfig(t), "--log-level", "loud", "about")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize app")
}

func TestAbout(t *testing.T) {
	old := buildInfo
	t.Cleanup(func() { buildInfo = old })
	buildInfo.Version = "v9.9.9"

	out, _, err := execute(t, "--config", missingConfig(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "v9.9.9")
}

const splitScenario = `
name: split
window: {width: 800, height: 600}
widgets:
  - {name: files, title: Files}
  - {name: editor, title: Editor}
steps:
  - {op: dock, widget: editor, location: left}
  - {op: dock, widget: files, location: right}
  - {op: drag, widget: files, path: [{x: 400, y: 300}, {x: 5, y: 300}]}
`

func TestSimulate_Tree(t *testing.T) {
	path := writeFile(t, "split.yaml", splitScenario)

	out, _, err := execute(t, "--config", missingConfig(t), "simulate", path)
	require.NoError(t, err)

	assert.Contains(t, out, "split")
	assert.Contains(t, out, "dropped")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "[files]")
	assert.Contains(t, out, "[editor]")
}

func TestSimulate_YAML(t *testing.T) {
	path := writeFile(t, "split.yaml", splitScenario)

	out, _, err := execute(t, "--config", missingConfig(t), "simulate", "--yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "main_windows:")
	assert.Contains(t, out, "orientation: row")
	assert.Contains(t, out, "- files")
}

func TestSimulate_StepErrorStillPrints(t *testing.T) {
	path := writeFile(t, "bad.yaml", `
window: {width: 800, height: 600}
widgets: [{name: files}]
steps:
  - {op: dock, widget: files}
  - {op: separator, index: 2, delta: 5}
`)
	out, _, err := execute(t, "--config", missingConfig(t), "simulate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1 (separator)")
	assert.Contains(t, out, "[files]")
}

func TestProbe(t *testing.T) {
	fe := headless.New()
	top := fe.NewRootView("top")
	top.SetGeometry(geom.Rect{X: 10, Y: 20, Width: 640, Height: 480})
	top.SetProperty(view.PropertyMinSize, geom.Size{Width: 200, Height: 150})
	child := headless.NewNode("child")
	child.SetParent(top)

	info, err := probe(view.NewBridge(context.Background(), fe), child)
	require.NoError(t, err)

	assert.Equal(t, geom.Rect{X: 10, Y: 20, Width: 640, Height: 480}, info.Rect)
	assert.True(t, info.Visible)
	assert.Equal(t, geom.Size{Width: 200, Height: 150}, info.MinSize)
	assert.NotZero(t, info.Handle)

	_, err = probe(view.NewBridge(context.Background(), fe), headless.NewNode("detached"))
	assert.ErrorIs(t, err, x11.ErrNoWindow)
}
