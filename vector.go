package hologlobe

import (
	"math"
)

// WorldRight represents a unit vector in the global direction of +X on the right-handed coordinate system (right).
var WorldRight = NewVector(1, 0, 0)

// WorldUp represents a unit vector in the global direction of +Y (upwards, towards the north pole).
var WorldUp = NewVector(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of +Z (backwards, towards the default camera).
var WorldBackward = NewVector(0, 0, 1)

// Vector represents a 3D Vector, used for positions, directions and scales.
// The fourth component, W, is only used to carry the homogeneous coordinate through projection.
// Vector functions return modified copies, so calls can be chained.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
	W float64 // The w (4th) component of the Vector; not used for most Vector functions
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: 0}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided (ignoring the W component).
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it (ignoring the W component).
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector pointing the opposite way.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	vec.W = -vec.W
	return vec
}

// Magnitude returns the length of the Vector (ignoring the Vector's W component).
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the two Vectors.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A zero-length Vector is returned unchanged.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vectors are close enough in all values (excluding W).
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0 (excluding W).
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// Rotate returns a copy of the Vector, rotated around the Vector axis provided by the angle provided (in radians).
// The function is most efficient if passed one of the World axis constants.
func (vec Vector) Rotate(axis Vector, angle float64) Vector {

	cos, sin := math.Cos(angle), math.Sin(angle)

	if axis.Equals(WorldRight) {
		ay, az := vec.Y, vec.Z
		vec.Y = ay*cos - az*sin
		vec.Z = ay*sin + az*cos
		return vec
	}

	if axis.Equals(WorldUp) {
		ax, az := vec.X, vec.Z
		vec.X = ax*cos + az*sin
		vec.Z = -ax*sin + az*cos
		return vec
	}

	if axis.Equals(WorldBackward) {
		ax, ay := vec.X, vec.Y
		vec.X = ax*cos - ay*sin
		vec.Y = ax*sin + ay*cos
		return vec
	}

	// Rodrigues' rotation formula
	u := axis.Unit()
	return vec.Scale(cos).Add(u.Cross(vec).Scale(sin)).Add(u.Scale(u.Dot(vec) * (1 - cos)))

}

// Scale scales a Vector by the given scalar (ignoring the W component).
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector (ignoring the W component).
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// IsFinite returns true if none of the X, Y, or Z components are NaN or infinite.
func (vec Vector) IsFinite() bool {
	for _, v := range [3]float64{vec.X, vec.Y, vec.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
