package vec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONComponentOrder(t *testing.T) {
	data, err := json.Marshal(Vec4i{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3,4]`, string(data))

	var v Vec3f
	require.NoError(t, json.Unmarshal([]byte(`[0.5, -1, 2]`), &v))
	assert.Equal(t, Vec3f{0.5, -1, 2}, v)
}

func TestYAMLRoundTrip(t *testing.T) {
	in := struct {
		Position Vec3d `yaml:"position"`
		Size     Vec2u `yaml:"size"`
	}{Vec3d{1.25, -3, 0}, Vec2u{640, 480}}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	out := in
	out.Position, out.Size = Vec3d{}, Vec2u{}
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
