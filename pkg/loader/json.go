// Package loader reads a JSON scene description into the in-memory
// scene graph the renderer operates on.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dfaulx/spiraltrace/pkg/core"
	"github.com/dfaulx/spiraltrace/pkg/geometry"
	"github.com/dfaulx/spiraltrace/pkg/material"
	"github.com/dfaulx/spiraltrace/pkg/scene"
)

type vec3JSON struct {
	X, Y, Z float64
}

func (v vec3JSON) toVec3() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

type colorJSON struct {
	R, G, B float64
}

func (c colorJSON) toColor() core.Color {
	return core.NewVec3(c.R, c.G, c.B)
}

func (c colorJSON) validate() error {
	for _, ch := range []float64{c.R, c.G, c.B} {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("material.color channel %g out of range [0,1]", ch)
		}
	}
	return nil
}

type materialJSON struct {
	Type       string    `json:"type"`
	Color      colorJSON `json:"color"`
	Albedo     float64   `json:"albedo"`
	Fuzz       float64   `json:"fuzz"`
	Refraction float64   `json:"refraction"`
}

func (m materialJSON) toMaterial() (material.Material, error) {
	if err := m.Color.validate(); err != nil {
		return material.Material{}, err
	}
	color := m.Color.toColor()
	switch m.Type {
	case "lambertian":
		return material.NewLambertian(color, m.Albedo), nil
	case "metal":
		return material.NewMetal(color, m.Albedo, m.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(color, m.Refraction), nil
	default:
		return material.Material{}, fmt.Errorf("unknown material.type %q", m.Type)
	}
}

// entryJSON is the union of every field any scene entry may carry.
// Which fields apply is determined by Type.
type entryJSON struct {
	Type     string        `json:"type"`
	Pos      vec3JSON      `json:"pos"`
	LookAt   vec3JSON      `json:"lookat"`
	FOV      float64       `json:"fov"`
	Radius   float64       `json:"radius"`
	Material *materialJSON `json:"material"`
}

// Load reads the scene JSON at path and builds a Scene sized
// width x height along with its Camera. Exactly one camera entry is
// required; an out-of-range color channel or unrecognized type or
// material.type is a LoadError.
func Load(path string, width, height int) (*scene.Scene, *scene.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Cause: err}
	}

	var entries []entryJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, &LoadError{Path: path, Cause: err}
	}

	sc := scene.NewScene(width, height)
	var cam *scene.Camera

	for _, e := range entries {
		switch e.Type {
		case "camera":
			if cam != nil {
				return nil, nil, &LoadError{Path: path, Cause: fmt.Errorf("more than one camera entry")}
			}
			cam = scene.NewCamera(e.Pos.toVec3(), e.LookAt.toVec3(), e.FOV)

		case "sphere":
			mat, err := e.materialOrErr()
			if err != nil {
				return nil, nil, &LoadError{Path: path, Cause: err}
			}
			sc.AddObject(geometry.NewSphere(e.Pos.toVec3(), e.Radius), mat)

		case "point_light":
			mat, err := e.materialOrErr()
			if err != nil {
				return nil, nil, &LoadError{Path: path, Cause: err}
			}
			sc.AddLight(geometry.NewSphere(e.Pos.toVec3(), e.Radius), mat)

		default:
			return nil, nil, &LoadError{Path: path, Cause: fmt.Errorf("unknown entry type %q", e.Type)}
		}
	}

	if cam == nil {
		return nil, nil, &LoadError{Path: path, Cause: fmt.Errorf("scene file has no camera entry")}
	}

	return sc, cam, nil
}

func (e entryJSON) materialOrErr() (material.Material, error) {
	if e.Material == nil {
		return material.Material{}, fmt.Errorf("%s entry missing material", e.Type)
	}
	return e.Material.toMaterial()
}
