package crowdmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestNew(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1

	scene, err := New(cfg)
	require.NoError(t, err)
	assert.Len(t, scene.People, 50)
	assert.NotEmpty(t, scene.Triangles)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.People = -1

	scene, err := New(cfg)
	assert.Error(t, err)
	assert.Nil(t, scene)
}
