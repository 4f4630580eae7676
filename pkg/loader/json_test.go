package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dfaulx/spiraltrace/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidScene(t *testing.T) {
	path := writeScene(t, `[
		{"type":"camera","pos":{"x":0,"y":0,"z":0},"lookat":{"x":0,"y":0,"z":-1},"fov":90},
		{"type":"sphere","pos":{"x":0,"y":0,"z":-2},"radius":1,
		 "material":{"type":"lambertian","color":{"r":1,"g":0,"b":0},"albedo":0.8}},
		{"type":"point_light","pos":{"x":0,"y":5,"z":0},"radius":0.1,
		 "material":{"type":"metal","color":{"r":1,"g":1,"b":1}}}
	]`)

	sc, cam, err := Load(path, 100, 100)
	require.NoError(t, err)
	assert.NotNil(t, cam)
	assert.Len(t, sc.Objects, 1)
	assert.Len(t, sc.Lights, 1)
	assert.Equal(t, scene.KindObject, sc.Objects[0].Kind)
	assert.Equal(t, scene.KindLight, sc.Lights[0].Kind)
}

func TestLoadRequiresExactlyOneCamera(t *testing.T) {
	path := writeScene(t, `[
		{"type":"sphere","pos":{"x":0,"y":0,"z":-2},"radius":1,
		 "material":{"type":"lambertian","color":{"r":1,"g":0,"b":0},"albedo":0.8}}
	]`)

	_, _, err := Load(path, 100, 100)
	assert.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadRejectsTwoCameras(t *testing.T) {
	path := writeScene(t, `[
		{"type":"camera","pos":{"x":0,"y":0,"z":0},"lookat":{"x":0,"y":0,"z":-1},"fov":90},
		{"type":"camera","pos":{"x":1,"y":0,"z":0},"lookat":{"x":0,"y":0,"z":-1},"fov":90}
	]`)

	_, _, err := Load(path, 100, 100)
	assert.Error(t, err)
}

func TestLoadRejectsOutOfRangeColor(t *testing.T) {
	path := writeScene(t, `[
		{"type":"camera","pos":{"x":0,"y":0,"z":0},"lookat":{"x":0,"y":0,"z":-1},"fov":90},
		{"type":"sphere","pos":{"x":0,"y":0,"z":-2},"radius":1,
		 "material":{"type":"lambertian","color":{"r":1.5,"g":0,"b":0},"albedo":0.8}}
	]`)

	_, _, err := Load(path, 100, 100)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownMaterialType(t *testing.T) {
	path := writeScene(t, `[
		{"type":"camera","pos":{"x":0,"y":0,"z":0},"lookat":{"x":0,"y":0,"z":-1},"fov":90},
		{"type":"sphere","pos":{"x":0,"y":0,"z":-2},"radius":1,
		 "material":{"type":"plastic","color":{"r":1,"g":0,"b":0}}}
	]`)

	_, _, err := Load(path, 100, 100)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownEntryType(t *testing.T) {
	path := writeScene(t, `[
		{"type":"camera","pos":{"x":0,"y":0,"z":0},"lookat":{"x":0,"y":0,"z":-1},"fov":90},
		{"type":"cube","pos":{"x":0,"y":0,"z":-2}}
	]`)

	_, _, err := Load(path, 100, 100)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.json"), 10, 10)
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeScene(t, `{not valid json`)
	_, _, err := Load(path, 10, 10)
	assert.Error(t, err)
}
