// Package broadphase is the root of a broad-phase collision detection
// subsystem for a 3D rigid-body physics engine: it finds candidate pairs of
// bodies whose shapes might be touching, without computing contact points or
// resolving any collision.
//
// The module is organized into focused subpackages:
//
//	geom/         — AABBs, rigid transforms, rays, and the CollisionShape
//	                interface (Sphere, Box)
//	ecs/          — entity handles and the columnar component stores
//	                (proxy shapes, body transforms) the broad-phase runs over
//	dyntree/      — the dynamic AABB tree: SAH insertion, AVL rebalancing,
//	                overlap queries, raycasts
//	broadphase/   — BroadPhase: owns a dyntree.Tree plus the ECS stores,
//	                and runs the pair-generation sweep over moved shapes
//	proxyshape/   — View, a per-shape facade over a BroadPhase
//	scenebuilder/ — deterministic and seeded-random scene construction for
//	                tests and examples
//
// A typical step: move bodies, call UpdateProxyShape(s) to refresh the tree,
// then ComputeOverlappingPairs to collect the candidate pairs a narrow phase
// should examine next.
//
//	go get github.com/kavelarth/broadphase
package broadphase
