package loam

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/loam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/panels/internal/testutils"
	"github.com/aretw0/panels/pkg/definition"
	"github.com/aretw0/panels/pkg/ports/tests"
)

var docs = map[string]string{
	"revenue.md": `---
type: stats
order: 1
heading: Revenue
stats:
  - label: Total
    value: 45000
---
Revenue over the last 30 days.`,
	"sales.yaml": `type: bar
order: 2
heading: Sales
labels: [Jan, Feb]
datasets:
  - label: Sales
    data: [1, 2]
`,
	"share.json": `{"id": "market", "type": "pie", "order": 2, "labels": ["A"], "values": [1]}`,
	"README.md":  "# Notes\nNot a widget.",
}

func newSource(t *testing.T) (string, *Source) {
	t.Helper()
	dir, repo := testutils.SetupTestRepo(t, loam.WithVersioning(false))
	testutils.WriteFiles(t, dir, docs)
	return dir, New(loam.NewTypedRepository[definition.Spec](repo), WithName("board"))
}

func TestSource_Contract(t *testing.T) {
	_, src := newSource(t)
	tests.SourceContractTest(t, src, "board", []string{"revenue", "market", "sales"})
}

func TestSource_Load(t *testing.T) {
	_, src := newSource(t)

	_, specs, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, specs, 3)

	revenue := specs[0]
	assert.Equal(t, "Revenue over the last 30 days.", revenue.Description)
	require.Len(t, revenue.Stats, 1)
	assert.EqualValues(t, 45000, revenue.Stats[0].Value)
}

func TestSource_Collision(t *testing.T) {
	dir, src := newSource(t)
	testutils.WriteFiles(t, dir, map[string]string{
		"other.yaml": "id: market\ntype: line\n",
	})

	_, _, err := src.Load(context.Background())
	assert.ErrorContains(t, err, "collision detected")
}

func TestSource_Watch(t *testing.T) {
	dir, src := newSource(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := src.Watch(ctx)
	require.NoError(t, err)

	testutils.WriteFiles(t, dir, map[string]string{
		"sales.yaml": "type: bar\nheading: Sales v2\n",
	})

	select {
	case id := <-ch:
		assert.Equal(t, "sales", id)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for loam event")
	}
}
