// Package scene owns the renderable world: the objects and lights a
// render pass iterates, and the camera that generates primary rays.
package scene

import (
	"github.com/dfaulx/spiraltrace/pkg/geometry"
	"github.com/dfaulx/spiraltrace/pkg/material"
)

// Kind disambiguates an Object at shading time: a Light hit returns
// hard white immediately, an Object hit is shaded via its material.
type Kind int

const (
	KindObject Kind = iota
	KindLight
)

// Object pairs a hit-testable primitive with its material and role.
type Object struct {
	Geometry geometry.Hitable
	Material material.Material
	Kind     Kind
}

// Scene owns the objects and lights for one render. Objects and
// lights are stored in independent slices so the shader can iterate
// lights separately for shadow sampling without filtering the object
// list on every shading call. Primitives are read-only once a render
// begins: workers share this value across goroutines.
type Scene struct {
	Width, Height int
	Objects       []Object
	Lights        []Object
}

// NewScene creates an empty scene of the given pixel dimensions.
func NewScene(width, height int) *Scene {
	return &Scene{Width: width, Height: height}
}

// AddObject appends a shaded, non-emissive object.
func (s *Scene) AddObject(geo geometry.Hitable, mat material.Material) {
	s.Objects = append(s.Objects, Object{Geometry: geo, Material: mat, Kind: KindObject})
}

// AddLight appends an emissive object that also participates in
// shadow-ray visibility tests for every other object's shading.
func (s *Scene) AddLight(geo geometry.Hitable, mat material.Material) {
	s.Lights = append(s.Lights, Object{Geometry: geo, Material: mat, Kind: KindLight})
}
