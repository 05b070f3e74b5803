package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCheckerTexture(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerTextureColors(0.5, even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.1, 0.1, 0.1), even},
		{"step in x", core.NewVec3(0.6, 0.1, 0.1), odd},
		{"step in x and y", core.NewVec3(0.6, 0.6, 0.1), even},
		{"step in all axes", core.NewVec3(0.6, 0.6, 0.6), odd},
		{"negative x", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"negative x and z", core.NewVec3(-0.1, 0.1, -0.1), even},
		{"three negative steps", core.NewVec3(-0.1, -0.1, -0.1), odd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := checker.Evaluate(core.Vec2{}, tt.point); !result.Equals(tt.expected) {
				t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, result)
			}
		})
	}
}

func TestPerlin_Deterministic(t *testing.T) {
	a := NewPerlin(core.NewSeededSampler(42))
	b := NewPerlin(core.NewSeededSampler(42))

	for _, p := range []core.Vec3{
		core.NewVec3(0.3, 1.7, -2.2),
		core.NewVec3(10.5, 0.25, 3.75),
		core.NewVec3(-7.1, -0.9, 4.4),
	} {
		if a.Noise(p) != b.Noise(p) {
			t.Errorf("Expected identical noise for identical seeds at %v", p)
		}
	}
}

func TestPerlin_Permutations(t *testing.T) {
	perlin := NewPerlin(core.NewSeededSampler(3))

	for name, perm := range map[string]*[perlinPointCount]int{
		"x": &perlin.permX,
		"y": &perlin.permY,
		"z": &perlin.permZ,
	} {
		seen := make(map[int]bool)
		for _, v := range perm {
			if v < 0 || v >= perlinPointCount || seen[v] {
				t.Fatalf("perm%s is not a permutation of 0..%d", name, perlinPointCount-1)
			}
			seen[v] = true
		}
	}

	for i, v := range perlin.randomVectors {
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Gradient %d has length %f, expected 1", i, v.Length())
		}
	}
}

func TestPerlin_NoiseProperties(t *testing.T) {
	perlin := NewPerlin(core.NewSeededSampler(42))
	sampler := core.NewSeededSampler(7)

	// Gradient noise vanishes on the integer lattice
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(3, -2, 5), core.NewVec3(-1, 7, 2)} {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("Expected zero noise at lattice point %v, got %f", p, n)
		}
	}

	// Noise is continuous and bounded
	for i := 0; i < 1000; i++ {
		p := core.RandomVec3(sampler, -20, 20)
		n := perlin.Noise(p)
		if n < -1.5 || n > 1.5 {
			t.Fatalf("Noise %f at %v out of range", n, p)
		}
		if d := math.Abs(perlin.Noise(p.Add(core.NewVec3(1e-6, 0, 0))) - n); d > 1e-4 {
			t.Fatalf("Noise jumps by %f over a tiny step at %v", d, p)
		}
	}
}

func TestPerlin_Turbulence(t *testing.T) {
	perlin := NewPerlin(core.NewSeededSampler(42))
	sampler := core.NewSeededSampler(9)

	for i := 0; i < 200; i++ {
		p := core.RandomVec3(sampler, -5, 5)
		if turb := perlin.Turbulence(p, 7); turb < 0 {
			t.Fatalf("Turbulence must be non-negative, got %f", turb)
		}
		if one := perlin.Turbulence(p, 1); math.Abs(one-math.Abs(perlin.Noise(p))) > 1e-12 {
			t.Fatalf("Single-octave turbulence should equal |noise|, got %f", one)
		}
	}
}

func TestNoiseTexture_Range(t *testing.T) {
	texture := NewNoiseTexture(NewPerlin(core.NewSeededSampler(42)), 4)
	sampler := core.NewSeededSampler(11)

	for i := 0; i < 1000; i++ {
		c := texture.Evaluate(core.Vec2{}, core.RandomVec3(sampler, -10, 10))
		if c.X < 0 || c.X > 1 || c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Expected a gray level in [0,1], got %v", c)
		}
	}
}

func TestDiffuseLight(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))

	if _, scattered := light.Scatter(core.Ray{}, core.HitRecord{}, &constantSampler{value: 0.5}); scattered {
		t.Error("Diffuse lights should not scatter")
	}
	if emitted := light.Emit(core.Vec2{}, core.Vec3{}); !emitted.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("Expected emission (4,4,4), got %v", emitted)
	}

	var _ core.Emitter = light

	textured := NewTexturedDiffuseLight(NewCheckerTextureColors(1, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)))
	if emitted := textured.Emit(core.Vec2{}, core.NewVec3(1.5, 0.5, 0.5)); !emitted.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected textured emission from the odd cell, got %v", emitted)
	}
}

func TestIsotropic(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	isotropic := NewIsotropicColor(albedo)
	sampler := core.NewSeededSampler(5)
	hit := core.HitRecord{Point: core.NewVec3(1, 1, 1), Normal: core.NewVec3(1, 0, 0), FrontFace: true}

	sum := core.NewVec3(0, 0, 0)
	const n = 20000
	for i := 0; i < n; i++ {
		scatter, scattered := isotropic.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), hit, sampler)
		if !scattered {
			t.Fatal("Isotropic should always scatter")
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if math.Abs(scatter.Scattered.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got %v", scatter.Scattered.Direction)
		}
		sum = sum.Add(scatter.Scattered.Direction)
	}

	// No preferred direction: the mean direction is close to zero
	if mean := sum.Multiply(1.0 / n); mean.Length() > 0.03 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}
