package proxyshape

import (
	"github.com/golang/geo/r3"
	"github.com/kavelarth/broadphase/broadphase"
	"github.com/kavelarth/broadphase/ecs"
	"github.com/kavelarth/broadphase/geom"
)

// View is a per-instance facade over one proxy shape's row, addressed by its
// entity handle, in a broadphase.BroadPhase's component stores.
type View struct {
	bp    *broadphase.BroadPhase
	proxy ecs.Entity
}

// New returns a View over proxy's row in bp. proxy must already have a row
// in bp.Proxies().
func New(bp *broadphase.BroadPhase, proxy ecs.Entity) *View {
	return &View{bp: bp, proxy: proxy}
}

// Proxy returns the underlying proxy-shape entity handle.
func (v *View) Proxy() ecs.Entity { return v.proxy }

func (v *View) row() (ecs.ProxyShapeRow, error) {
	return v.bp.Proxies().Get(v.proxy)
}

// Body returns the entity of the body this shape is attached to.
func (v *View) Body() (ecs.Entity, error) {
	row, err := v.row()
	if err != nil {
		return ecs.Entity{}, err
	}
	return row.BodyEntity, nil
}

// Shape returns the underlying collision geometry.
func (v *View) Shape() (geom.CollisionShape, error) {
	row, err := v.row()
	if err != nil {
		return nil, err
	}
	return row.Shape, nil
}

// LocalToBody returns the shape's current offset within its body.
func (v *View) LocalToBody() (geom.Transform, error) {
	row, err := v.row()
	if err != nil {
		return geom.Transform{}, err
	}
	return row.LocalToBody, nil
}

// SetLocalToBody updates the shape's offset within its body, wakes the
// owning body, and re-indexes the shape with the broad-phase.
func (v *View) SetLocalToBody(t geom.Transform) error {
	row, err := v.row()
	if err != nil {
		return err
	}
	if err := v.bp.Proxies().SetLocalToBody(v.proxy, t); err != nil {
		return err
	}
	if err := v.bp.Bodies().Wake(row.BodyEntity); err != nil {
		return err
	}
	return v.bp.UpdateProxyShape(v.proxy)
}

// FilterBits returns the shape's current category and mask bits.
func (v *View) FilterBits() (category, mask uint16, err error) {
	row, err := v.row()
	if err != nil {
		return 0, 0, err
	}
	return row.CategoryBits, row.MaskBits, nil
}

// SetFilterBits updates the shape's category and mask bits. Unlike
// SetLocalToBody, this never wakes the owning body or touches the
// broad-phase tree.
func (v *View) SetFilterBits(category, mask uint16) error {
	return v.bp.Proxies().SetFilterBits(v.proxy, category, mask)
}

// worldTransform composes the owning body's current world transform with
// the shape's local-to-body offset.
func (v *View) worldTransform() (geom.Transform, ecs.ProxyShapeRow, error) {
	row, err := v.row()
	if err != nil {
		return geom.Transform{}, row, err
	}
	body, err := v.bp.Bodies().Get(row.BodyEntity)
	if err != nil {
		return geom.Transform{}, row, err
	}
	return geom.Compose(body.World, row.LocalToBody), row, nil
}

// WorldTransform returns the shape's current world transform.
func (v *View) WorldTransform() (geom.Transform, error) {
	t, _, err := v.worldTransform()
	return t, err
}

// WorldAABB returns the shape's current tight world AABB.
func (v *View) WorldAABB() (geom.AABB, error) {
	t, row, err := v.worldTransform()
	if err != nil {
		return geom.AABB{}, err
	}
	return row.Shape.ComputeAABB(t), nil
}

// Raycast tests worldRay against this shape alone: composes the shape's
// world transform, inverts it to map the ray into shape-local space,
// delegates to the shape's own Raycast, then maps the resulting point by
// the world transform and the resulting normal by its rotation. If the
// owning body is sleeping, this immediately reports a miss without
// consulting the shape at all.
func (v *View) Raycast(worldRay geom.Ray) (geom.RaycastInfo, bool, error) {
	t, row, err := v.worldTransform()
	if err != nil {
		return geom.RaycastInfo{}, false, err
	}
	body, err := v.bp.Bodies().Get(row.BodyEntity)
	if err != nil {
		return geom.RaycastInfo{}, false, err
	}
	if body.Sleeping {
		return geom.RaycastInfo{}, false, nil
	}

	inv := t.Inverse()
	localRay := geom.Ray{
		Point1:      inv.TransformPoint(worldRay.Point1),
		Point2:      inv.TransformPoint(worldRay.Point2),
		MaxFraction: worldRay.MaxFraction,
	}
	info, hit := row.Shape.Raycast(localRay)
	if !hit {
		return geom.RaycastInfo{}, false, nil
	}
	info.WorldPoint = t.TransformPoint(info.WorldPoint)
	info.WorldNormal = t.TransformNormal(info.WorldNormal)
	return info, true, nil
}

// TestPointInside reports whether worldPoint lies within this shape.
func (v *View) TestPointInside(worldPoint r3.Vector) (bool, error) {
	t, row, err := v.worldTransform()
	if err != nil {
		return false, err
	}
	localPoint := t.Inverse().TransformPoint(worldPoint)
	return row.Shape.TestPointInside(localPoint), nil
}
