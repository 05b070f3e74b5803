package core

// Hittable is implemented by anything a ray can be intersected with:
// primitives, transform wrappers, participating media and aggregates
type Hittable interface {
	// Hit returns the closest intersection with t strictly inside rayT
	Hit(ray Ray, rayT Interval, sampler Sampler) (*HitRecord, bool)
	// BoundingBox returns a box enclosing the object for all ray times
	BoundingBox() AABB
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false when
	// the incoming ray is absorbed
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light.
// Materials that do not implement it emit black.
type Emitter interface {
	Emit(uv Vec2, point Vec3) Vec3
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv Vec2, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the ray
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface coordinates
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
