// Package scenebuilder assembles test and benchmark scenes: populated
// broadphase.BroadPhase instances with many bodies and proxy shapes laid out
// by a deterministic or seeded-random constructor, in the spirit of the
// teacher module's builder package (Constructor closures composed by a
// single BuildScene orchestrator, functional SceneOption configuration,
// WithSeed for reproducibility).
//
// Unlike builder, which mutates a core.Graph, a SceneConstructor mutates a
// broadphase.BroadPhase: it adds bodies via BroadPhase.AddBody and proxy
// shapes via BroadPhase.Proxies().Add + BroadPhase.AddProxyCollisionShape.
package scenebuilder
