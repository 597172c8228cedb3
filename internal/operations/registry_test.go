package operations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwreport/internal/operations"
)

func TestRegistry(t *testing.T) {
	r := operations.NewRegistry()

	require.NoError(t, r.Register(newFakeStep("b", nil)))
	require.NoError(t, r.Register(newFakeStep("a", nil)))
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []string{"b", "a"}, r.ListIDs(), "registration order is kept")

	step, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Step a", step.Name())
	assert.True(t, r.Has("b"))
	assert.False(t, r.Has("c"))

	_, err = r.Get("c")
	assert.Error(t, err)
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	r := operations.NewRegistry()
	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(newFakeStep("", nil)))

	require.NoError(t, r.Register(newFakeStep("a", nil)))
	assert.Error(t, r.Register(newFakeStep("a", nil)), "duplicate IDs are rejected")
}
