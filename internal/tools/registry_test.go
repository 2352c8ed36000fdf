package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubHandler(name string) Handler {
	return NewFunc(Definition{Name: name, Description: name + " tool"},
		func(ctx context.Context, args map[string]interface{}, ec *ExecutionContext) (interface{}, error) {
			return name, nil
		})
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(stubHandler("get_block")))
	require.NoError(t, reg.Register(stubHandler("list_notebooks")))

	h, ok := reg.Get("get_block")
	require.True(t, ok)
	assert.Equal(t, "get_block", h.Descriptor().Name)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	names := []string{"zeta", "alpha", "mid"}
	for _, n := range names {
		require.NoError(t, reg.Register(stubHandler(n)))
	}

	assert.Equal(t, names, reg.Names())

	all := reg.All()
	require.Len(t, all, 3)
	for i, h := range all {
		assert.Equal(t, names[i], h.Descriptor().Name)
	}

	descs := reg.Descriptors()
	require.Len(t, descs, 3)
	assert.Equal(t, "zeta", descs[0].Name)
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(stubHandler("echo")))

	err := reg.Register(stubHandler("echo"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateTool))
	assert.Contains(t, err.Error(), `"echo"`)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_InvalidHandlers(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(nil)
	assert.ErrorIs(t, err, ErrInvalidHandler)

	err = reg.Register(stubHandler("  "))
	assert.ErrorIs(t, err, ErrInvalidHandler)

	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() {
		reg.MustRegister(stubHandler("a"), stubHandler("a"))
	})
	assert.Equal(t, []string{"a"}, reg.Names())
}

func TestRegistry_Freeze(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubHandler("a"))
	assert.False(t, reg.Frozen())

	reg.Freeze()
	assert.True(t, reg.Frozen())

	err := reg.Register(stubHandler("b"))
	assert.ErrorIs(t, err, ErrRegistryFrozen)

	_, ok := reg.Get("a")
	assert.True(t, ok)
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubHandler("a"), stubHandler("b"))

	names := reg.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, reg.Names())
}
