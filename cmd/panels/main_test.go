package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dashboardYAML = `name: ops
widgets:
  - id: users
    type: stats
    heading: Users
    columns: 2
    stats:
      - label: Total
        value: 42
  - id: load
    type: bar
    heading: Load
    labels: [mon, tue]
    datasets:
      - label: cpu
        data: [1, 2]
    bar_thickness: 0
`

func writeDashboard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dashboardYAML), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "panels version ")
}

func TestRender(t *testing.T) {
	path := writeDashboard(t)

	out, err := execute(t, "render", path)
	require.NoError(t, err)

	var body struct {
		Dashboard string `json:"dashboard"`
		Widgets   []struct {
			ID    string         `json:"id"`
			Props map[string]any `json:"props"`
		} `json:"widgets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "ops", body.Dashboard)
	require.Len(t, body.Widgets, 2)
	assert.Equal(t, "users", body.Widgets[0].ID)
	assert.Equal(t, "StatsOverviewWidget", body.Widgets[0].Props["component"])

	t.Run("single widget from --path", func(t *testing.T) {
		out, err := execute(t, "render", "--path", path, "--id", "load", "--indent")
		require.NoError(t, err)
		var props map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &props))
		assert.Equal(t, "bar", props["chartType"])
	})

	t.Run("missing widget", func(t *testing.T) {
		_, err := execute(t, "render", path, "--id", "nope")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "render", filepath.Join(t.TempDir(), "none.yaml"))
		assert.Error(t, err)
	})
}

func TestRender_Mermaid(t *testing.T) {
	path := writeDashboard(t)

	out, err := execute(t, "render", path, "--format", "mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, "```mermaid")
	assert.Contains(t, out, "bar [1, 2]")
	assert.NotContains(t, out, "Users")

	_, err = execute(t, "render", path, "--format", "mermaid", "--id", "users")
	assert.Error(t, err)

	_, err = execute(t, "render", path, "--format", "xml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	path := writeDashboard(t)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   users")
	assert.Contains(t, out, "is valid (2 widgets)")

	out, err = execute(t, "validate", path, "--strict")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL load")
	assert.Contains(t, out, "ok   users")
}

func TestValidate_PrintContract(t *testing.T) {
	out, err := execute(t, "validate", "--print-contract", "ChartWidget")
	require.NoError(t, err)
	assert.Contains(t, out, `"chartType": "line|bar|pie|doughnut|area"`)
	assert.Contains(t, out, `"height": "int?"`)

	out, err = execute(t, "validate", "--print-contract", "StatsOverviewWidget", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, `"columns": "positive_int"`)

	_, err = execute(t, "validate", "--print-contract", "TableWidget")
	assert.Error(t, err)
}

func TestValidate_UnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widgets:\n  - id: x\n    type: lien\n"), 0644))

	_, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "line"?`)
}

func TestPreview(t *testing.T) {
	out, err := execute(t, "preview", writeDashboard(t), "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# ops")
	assert.Contains(t, out, "## Users")
	assert.Contains(t, out, "## Load")
}

func TestMake(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "make", "RecentOrders", "--root", root, "--chart", "line", "--module", "example.com/app", "-n")
	require.NoError(t, err)
	assert.Contains(t, out, "RecentOrders created successfully")
	assert.Contains(t, out, "example.com/app/widgets")
	assert.FileExists(t, filepath.Join(root, "widgets", "recent_orders.go"))

	_, err = execute(t, "make", "RecentOrders", "--root", root, "-n")
	assert.Error(t, err)

	_, err = execute(t, "make", "RecentOrders", "--root", root, "--type", "stats", "--panel", "Admin", "-n")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "panels", "admin", "widgets", "recent_orders.go"))
}

func TestDocs(t *testing.T) {
	out, err := execute(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "bar-chart")

	out, err = execute(t, "docs", "bar-chart", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "NewBarChart")

	out, err = execute(t, "docs", "--search", "polling")
	require.NoError(t, err)
	assert.Contains(t, out, "polling")

	_, err = execute(t, "docs", "bar-chrt")
	assert.Error(t, err)
}

func TestLang(t *testing.T) {
	out, err := execute(t, "lang")
	require.NoError(t, err)
	assert.Contains(t, out, "en\tltr")
	assert.Contains(t, out, "ar\trtl")

	out, err = execute(t, "lang", "ar-EG")
	require.NoError(t, err)
	assert.Contains(t, out, "# ar (rtl)")
	assert.Contains(t, out, "stats.increase = ")
}

func TestConfig_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "version", "--log-level", "loud")
	assert.Error(t, err)
}

func TestConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := writeDashboard(t)
	cfg := filepath.Join(dir, "panels.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("path: "+path+"\n"), 0644))

	out, err := execute(t, "render", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `"dashboard":"ops"`)
}
