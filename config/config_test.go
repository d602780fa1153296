package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hologlobe/hologlobe"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	s, err := GetSettings()
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, hologlobe.DefaultWidth, s.Window.Width)
	assert.Equal(t, hologlobe.DefaultHeight, s.Window.Height)
	assert.Equal(t, "Holographic Globe", s.Window.Title)
	assert.True(t, s.AutoRotate)
	assert.InDelta(t, 0.003, s.AutoRotateIncrement, 1e-12)
	assert.InDelta(t, 0.05, s.Smoothing, 1e-12)
	assert.InDelta(t, 0.01, s.Sensitivity, 1e-12)
	assert.InDelta(t, 0.01, s.ZoomSensitivity, 1e-12)
	assert.InDelta(t, 100.0, s.WheelPixelsPerLine, 1e-12)
	assert.InDelta(t, 8.0, s.MinDistance, 1e-12)
	assert.InDelta(t, 25.0, s.MaxDistance, 1e-12)
	assert.InDelta(t, 15.0, s.DefaultDistance, 1e-12)
	assert.InDelta(t, 45.0, s.FieldOfView, 1e-12)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Empty(t, s.Markers)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
logLevel: debug
window:
  width: 1280
  title: Globe
globe:
  autoRotate: false
camera:
  defaultDistance: 12
markers:
  seed: 7
  locations:
    - name: Reykjavik
      lat: 64.1466
      lon: -21.9426
      color: "#00ffcc"
    - name: Cape Town
      lat: -33.9249
      lon: 18.4241
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hologlobe.yaml"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	s, err := GetSettings()
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 1280, s.Window.Width)
	assert.Equal(t, hologlobe.DefaultHeight, s.Window.Height)
	assert.Equal(t, "Globe", s.Window.Title)
	assert.False(t, s.AutoRotate)
	assert.InDelta(t, 12.0, s.DefaultDistance, 1e-12)
	assert.Equal(t, uint64(7), s.Seed)
	require.Len(t, s.Markers, 2)
	assert.Equal(t, "Reykjavik", s.Markers[0].Name)
	assert.InDelta(t, 64.1466, s.Markers[0].Lat, 1e-9)
	assert.Equal(t, "#00ffcc", s.Markers[0].Color)
	assert.Equal(t, "", s.Markers[1].Color)

	opts, err := s.Options()
	require.NoError(t, err)

	assert.False(t, opts.AutoRotate)
	assert.Equal(t, uint64(7), opts.Seed)
	require.Len(t, opts.Locations, 2)
	assert.Equal(t, uint32(0x00ffcc), opts.Locations[0].Color.Hex())
	assert.Equal(t, uint32(0x00ff00), opts.Locations[1].Color.Hex())
	assert.InDelta(t, -21.9426, opts.Locations[0].Longitude, 1e-9)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hologlobe.json"), []byte(`{"logLevel": `), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestGetSettings_DistanceRange(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))
	viper.Set("camera.minDistance", 30)

	_, err := GetSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera.minDistance")
}

func TestSettingsOptions_InvalidMarker(t *testing.T) {
	_, err := Settings{Markers: []MarkerConfig{{Name: "Nowhere", Lat: 91}}}.Options()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nowhere")

	_, err = Settings{Markers: []MarkerConfig{{Name: "Bad Color", Color: "#zz0000"}}}.Options()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color")
}

func TestSettingsOptions_NoMarkersKeepsDefaults(t *testing.T) {
	opts, err := Settings{}.Options()
	require.NoError(t, err)
	assert.Empty(t, opts.Locations)
}
