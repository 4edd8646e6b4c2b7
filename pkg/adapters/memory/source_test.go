package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/panels/pkg/definition"
	"github.com/aretw0/panels/pkg/ports/tests"
)

func TestSource_Contract(t *testing.T) {
	src := New("mem",
		definition.Spec{ID: "a", Type: definition.TypeBar},
		definition.Spec{ID: "b", Type: definition.TypePie},
	)
	tests.SourceContractTest(t, src, "mem", []string{"a", "b"})
}

func TestSource_Watch(t *testing.T) {
	src := New("mem")
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := src.Watch(ctx)
	require.NoError(t, err)

	src.Set(definition.Spec{ID: "x", Type: definition.TypeLine})

	select {
	case got := <-ch:
		assert.Equal(t, "mem", got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	_, specs, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "x", specs[0].ID)

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, time.Second, 10*time.Millisecond)
}
