package scenebuilder

import (
	"testing"

	"github.com/kavelarth/broadphase/broadphase"
	"github.com/kavelarth/broadphase/ecs"
	"github.com/stretchr/testify/require"
)

func TestBuildScene_RandomScatter(t *testing.T) {
	bp := broadphase.New()
	err := BuildScene(bp, []SceneOption{WithSeed(42)}, RandomScatter(50, 100, 0.5, 2))
	require.NoError(t, err)

	stats := bp.Stats()
	require.Equal(t, 50, stats.ProxyCount)
	require.Equal(t, 50, stats.Tree.LeafCount)
	require.NoError(t, bp.Tree().Audit())
}

func TestBuildScene_RandomScatter_DeterministicWithoutSeed(t *testing.T) {
	bp1 := broadphase.New()
	require.NoError(t, BuildScene(bp1, nil, RandomScatter(10, 10, 1, 1)))

	bp2 := broadphase.New()
	require.NoError(t, BuildScene(bp2, nil, RandomScatter(10, 10, 1, 1)))

	box1, err := bp1.Tree().FatAABB(0)
	require.NoError(t, err)
	box2, err := bp2.Tree().FatAABB(0)
	require.NoError(t, err)
	require.Equal(t, box1, box2, "identical unseeded scenes must be reproducible")
}

func TestBuildScene_RandomScatter_RejectsInvalidParams(t *testing.T) {
	bp := broadphase.New()
	require.ErrorIs(t, BuildScene(bp, nil, RandomScatter(0, 10, 1, 1)), ErrTooFewBodies)
	require.ErrorIs(t, BuildScene(bp, nil, RandomScatter(1, -1, 1, 1)), ErrInvalidExtent)
	require.ErrorIs(t, BuildScene(bp, nil, RandomScatter(1, 10, 2, 1)), ErrInvalidRadiusRange)
}

func TestBuildScene_GridScatter(t *testing.T) {
	bp := broadphase.New()
	err := BuildScene(bp, nil, GridScatter(4, 4, 2, 2.0, 0.5))
	require.NoError(t, err)

	stats := bp.Stats()
	require.Equal(t, 32, stats.ProxyCount)
	require.NoError(t, bp.Tree().Audit())
}

func TestBuildScene_ComposesMultipleConstructors(t *testing.T) {
	bp := broadphase.New()
	err := BuildScene(bp, []SceneOption{WithSeed(7)},
		GridScatter(2, 2, 1, 3.0, 0.5),
		RandomScatter(20, 50, 0.5, 1.5),
	)
	require.NoError(t, err)
	require.Equal(t, 24, bp.Stats().ProxyCount)
}

func TestBuildScene_NilConstructorFails(t *testing.T) {
	bp := broadphase.New()
	err := BuildScene(bp, nil, nil)
	require.ErrorIs(t, err, ErrConstructFailed)
}

func TestBuildScene_FilterBitsAppliedToShapes(t *testing.T) {
	bp := broadphase.New()
	err := BuildScene(bp, []SceneOption{WithFilterBits(0x01, 0x02)}, GridScatter(2, 1, 1, 2, 0.5))
	require.NoError(t, err)

	var categories []uint16
	err = bp.Proxies().ForEachEnabled(func(proxy ecs.Entity, row ecs.ProxyShapeRow) error {
		categories = append(categories, row.CategoryBits)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, categories, 2)
	for _, c := range categories {
		require.EqualValues(t, 0x01, c)
	}
}
