package hologlobe

import (
	"math"
	"sort"
)

// Ray is a half-line starting at Origin and running along Direction (which should be unit length).
type Ray struct {
	Origin    Vector
	Direction Vector
}

// At returns the point along the Ray at the distance given.
func (ray Ray) At(distance float64) Vector {
	return ray.Origin.Add(ray.Direction.Scale(distance))
}

// RayHit represents the result of a raycast test.
type RayHit struct {
	Object   *Model  // Object is the Model that was struck by the raycast.
	Position Vector  // Position is the world position where the object was struck.
	Normal   Vector  // Normal is the normal of the surface the ray struck.
	Distance float64 // Distance is how far along the ray the strike happened.
}

// boundingSphereRayTest tests the Ray against a sphere, returning the distance along the ray of the nearest
// intersection. A ray starting inside the sphere hits it at distance 0.
func boundingSphereRayTest(center Vector, radius float64, ray Ray) (float64, bool) {

	m := ray.Origin.Sub(center)
	b := m.Dot(ray.Direction)
	c := m.Dot(m) - radius*radius

	if c > 0 && b > 0 {
		return 0, false
	}

	discr := b*b - c

	if discr < 0 {
		return 0, false
	}

	t := -b - math.Sqrt(discr)

	if t < 0 {
		t = 0
	}

	return t, true

}

// triangleRayTest tests the Ray against the triangle a, b, c from both sides, returning the distance along the
// ray of the intersection (Möller-Trumbore).
func triangleRayTest(a, b, c Vector, ray Ray) (float64, bool) {

	const epsilon = 1e-9

	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	p := ray.Direction.Cross(edge2)
	det := edge1.Dot(p)

	if math.Abs(det) < epsilon {
		return 0, false
	}

	invDet := 1 / det
	s := ray.Origin.Sub(a)
	u := s.Dot(p) * invDet

	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := ray.Direction.Dot(q) * invDet

	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet

	if t < epsilon {
		return 0, false
	}

	return t, true

}

// RayTest casts the Ray against the triangles of the Models provided, after a bounding sphere broadphase.
// Invisible Models are skipped. Hits are returned sorted from nearest to furthest, one per Model.
func RayTest(ray Ray, models ...*Model) []RayHit {

	hits := []RayHit{}

	for _, model := range models {

		if model.Mesh == nil || !visibleInTree(model) {
			continue
		}

		if _, ok := boundingSphereRayTest(model.WorldPosition(), model.BoundingRadius(), ray); !ok {
			continue
		}

		transform := model.Transform()
		closest := math.MaxFloat64
		var closestNormal Vector
		found := false

		for _, tri := range model.Mesh.Triangles {

			a := transform.MultVec(model.Mesh.VertexPositions[tri[0]])
			b := transform.MultVec(model.Mesh.VertexPositions[tri[1]])
			c := transform.MultVec(model.Mesh.VertexPositions[tri[2]])

			if t, ok := triangleRayTest(a, b, c, ray); ok && t < closest {
				closest = t
				closestNormal = b.Sub(a).Cross(c.Sub(a)).Unit()
				found = true
			}

		}

		if found {
			hits = append(hits, RayHit{
				Object:   model,
				Position: ray.At(closest),
				Normal:   closestNormal,
				Distance: closest,
			})
		}

	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })

	return hits

}
