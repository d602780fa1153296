package hologlobe

import (
	"math"
	"math/rand"
	"testing"
)

func BenchmarkAllocateVectorStructs(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([]Vector, 0, 100)
		vecs = append(vecs, Vector{0, 0, 0, 0})
		_ = vecs
	}

}

func BenchmarkMathInternalVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}

func BenchmarkVectorRotate(b *testing.B) {

	b.ReportAllocs()

	vec := NewVector(1, 2, 3)
	axis := NewVector(1, 1, 0)

	for i := 0; i < b.N; i++ {
		vec = vec.Rotate(axis, 0.01)
	}

}

func TestVectorCross(t *testing.T) {

	if out := WorldRight.Cross(WorldUp); !out.Equals(WorldBackward) {
		t.Fatalf("X cross Y is %v, expected +Z", out)
	}

	if out := WorldUp.Cross(WorldRight); !out.Equals(WorldBackward.Invert()) {
		t.Fatalf("Y cross X is %v, expected -Z", out)
	}

}

func TestVectorUnit(t *testing.T) {

	if m := NewVector(3, 4, 12).Unit().Magnitude(); math.Abs(m-1) > 1e-9 {
		t.Errorf("unit vector has a magnitude of %v", m)
	}

	if !NewVectorZero().Unit().IsZero() {
		t.Error("normalizing a zero vector should leave it zero")
	}

}

func TestVectorRotateArbitraryAxis(t *testing.T) {

	// A non-unit axis skips the fast paths, so both routes should agree.
	vec := NewVector(1, 2, 3)

	for _, axis := range []Vector{WorldRight, WorldUp, WorldBackward} {

		fast := vec.Rotate(axis, 0.7)
		slow := vec.Rotate(axis.Scale(2), 0.7)

		if !fast.Equals(slow) {
			t.Errorf("rotating around %v gave %v, but the general case gave %v", axis, fast, slow)
		}

		if math.Abs(fast.Magnitude()-vec.Magnitude()) > 1e-9 {
			t.Errorf("rotating around %v changed the vector's length", axis)
		}

	}

}

func TestVectorIsFinite(t *testing.T) {

	if !NewVector(1, -2, 3).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}

	if NewVector(math.NaN(), 0, 0).IsFinite() || NewVector(0, math.Inf(1), 0).IsFinite() {
		t.Error("non-finite vector reported as finite")
	}

}
