package ecs

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/kavelarth/broadphase/geom"
	"github.com/stretchr/testify/require"
)

func TestTransformComponents_AddGetRemove(t *testing.T) {
	store := NewTransformComponents()
	alloc := NewAllocator()
	body := alloc.New()

	world := geom.Transform{Translation: r3.Vector{X: 1, Y: 2, Z: 3}}
	require.NoError(t, store.Add(body, world))
	require.ErrorIs(t, store.Add(body, geom.Identity()), ErrEntityAlreadyExists)

	row, err := store.Get(body)
	require.NoError(t, err)
	require.Equal(t, world, row.World)
	require.False(t, row.Sleeping)

	require.NoError(t, store.Remove(body))
	_, err = store.Get(body)
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestTransformComponents_UnknownBodyErrors(t *testing.T) {
	store := NewTransformComponents()
	unknown := Entity{Index: 42, Generation: 1}

	_, err := store.Get(unknown)
	require.ErrorIs(t, err, ErrEntityNotFound)
	require.ErrorIs(t, store.Remove(unknown), ErrEntityNotFound)
	require.ErrorIs(t, store.SetWorldTransform(unknown, geom.Identity()), ErrEntityNotFound)
	require.ErrorIs(t, store.SetLinearVelocity(unknown, r3.Vector{}), ErrEntityNotFound)
	require.ErrorIs(t, store.Wake(unknown), ErrEntityNotFound)
	require.ErrorIs(t, store.SetSleeping(unknown, true), ErrEntityNotFound)
}

func TestTransformComponents_SetWorldTransform(t *testing.T) {
	store := NewTransformComponents()
	alloc := NewAllocator()
	body := alloc.New()
	require.NoError(t, store.Add(body, geom.Identity()))

	moved := geom.Transform{Translation: r3.Vector{X: 5}}
	require.NoError(t, store.SetWorldTransform(body, moved))

	row, err := store.Get(body)
	require.NoError(t, err)
	require.Equal(t, moved, row.World)
}

func TestTransformComponents_SleepAndWake(t *testing.T) {
	store := NewTransformComponents()
	alloc := NewAllocator()
	body := alloc.New()
	require.NoError(t, store.Add(body, geom.Identity()))

	require.NoError(t, store.SetSleeping(body, true))
	row, err := store.Get(body)
	require.NoError(t, err)
	require.True(t, row.Sleeping)

	require.NoError(t, store.Wake(body))
	row, err = store.Get(body)
	require.NoError(t, err)
	require.False(t, row.Sleeping)
}

func TestTransformComponents_SetLinearVelocity(t *testing.T) {
	store := NewTransformComponents()
	alloc := NewAllocator()
	body := alloc.New()
	require.NoError(t, store.Add(body, geom.Identity()))

	v := r3.Vector{X: 1, Y: -2, Z: 0.5}
	require.NoError(t, store.SetLinearVelocity(body, v))

	row, err := store.Get(body)
	require.NoError(t, err)
	require.Equal(t, v, row.LinearVelocity)
}
