package config

import (
	"errors"
	"fmt"

	"github.com/hologlobe/hologlobe"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the config file; any extension viper understands (yaml, json, toml...) works.
const ConfigName = "hologlobe"

// WindowConfig holds desktop window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// MarkerConfig is a single configured location
type MarkerConfig struct {
	Name  string  `json:"name" mapstructure:"name"`
	Lat   float64 `json:"lat" mapstructure:"lat"`
	Lon   float64 `json:"lon" mapstructure:"lon"`
	Color string  `json:"color" mapstructure:"color"`
}

// Settings holds everything the globe and its host can be configured with
type Settings struct {
	LogLevel string
	Window   WindowConfig

	AutoRotate          bool
	AutoRotateIncrement float64
	Smoothing           float64

	Sensitivity        float64
	ZoomSensitivity    float64
	WheelPixelsPerLine float64

	MinDistance     float64
	MaxDistance     float64
	DefaultDistance float64
	FieldOfView     float64

	Seed    uint64
	Markers []MarkerConfig
}

// Load sets default values and reads the config file from configDir, if there is one.
// A missing config file is not an error; the defaults apply.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", hologlobe.DefaultWidth)
	viper.SetDefault("window.height", hologlobe.DefaultHeight)
	viper.SetDefault("window.title", "Holographic Globe")

	viper.SetDefault("globe.autoRotate", true)
	viper.SetDefault("globe.autoRotateIncrement", hologlobe.DefaultAutoRotateIncrement)
	viper.SetDefault("globe.smoothing", hologlobe.DefaultSmoothing)

	viper.SetDefault("controls.sensitivity", hologlobe.DefaultSensitivity)
	viper.SetDefault("controls.zoomSensitivity", hologlobe.DefaultZoomSensitivity)
	viper.SetDefault("controls.wheelPixelsPerLine", hologlobe.DefaultWheelPixelsPerLine)

	viper.SetDefault("camera.minDistance", hologlobe.DefaultMinDistance)
	viper.SetDefault("camera.maxDistance", hologlobe.DefaultMaxDistance)
	viper.SetDefault("camera.defaultDistance", hologlobe.DefaultDistance)
	viper.SetDefault("camera.fov", hologlobe.DefaultFieldOfView)

	viper.SetDefault("markers.seed", 0)

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetSettings returns the loaded settings.
func GetSettings() (Settings, error) {
	s := Settings{
		LogLevel: viper.GetString("logLevel"),
		Window: WindowConfig{
			Width:  viper.GetInt("window.width"),
			Height: viper.GetInt("window.height"),
			Title:  viper.GetString("window.title"),
		},
		AutoRotate:          viper.GetBool("globe.autoRotate"),
		AutoRotateIncrement: viper.GetFloat64("globe.autoRotateIncrement"),
		Smoothing:           viper.GetFloat64("globe.smoothing"),
		Sensitivity:         viper.GetFloat64("controls.sensitivity"),
		ZoomSensitivity:     viper.GetFloat64("controls.zoomSensitivity"),
		WheelPixelsPerLine:  viper.GetFloat64("controls.wheelPixelsPerLine"),
		MinDistance:         viper.GetFloat64("camera.minDistance"),
		MaxDistance:         viper.GetFloat64("camera.maxDistance"),
		DefaultDistance:     viper.GetFloat64("camera.defaultDistance"),
		FieldOfView:         viper.GetFloat64("camera.fov"),
		Seed:                viper.GetUint64("markers.seed"),
	}

	if err := viper.UnmarshalKey("markers.locations", &s.Markers); err != nil {
		return Settings{}, fmt.Errorf("error reading markers: %w", err)
	}

	if s.MinDistance > s.MaxDistance {
		return Settings{}, fmt.Errorf("camera.minDistance (%v) is greater than camera.maxDistance (%v)", s.MinDistance, s.MaxDistance)
	}

	return s, nil
}

// Options maps the settings onto the globe's Options. Marker colors are "#rrggbb" strings; an empty color
// falls back to bright green.
func (s Settings) Options() (hologlobe.Options, error) {
	opts := hologlobe.DefaultOptions()

	opts.Width = s.Window.Width
	opts.Height = s.Window.Height
	opts.AutoRotate = s.AutoRotate
	opts.AutoRotateIncrement = s.AutoRotateIncrement
	opts.Smoothing = s.Smoothing
	opts.Controls.Sensitivity = s.Sensitivity
	opts.Controls.ZoomSensitivity = s.ZoomSensitivity
	opts.WheelPixelsPerLine = s.WheelPixelsPerLine
	opts.MinDistance = s.MinDistance
	opts.MaxDistance = s.MaxDistance
	opts.DefaultDistance = s.DefaultDistance
	opts.FieldOfView = s.FieldOfView
	opts.Seed = s.Seed

	for i, m := range s.Markers {
		if m.Lat < -90 || m.Lat > 90 || m.Lon < -180 || m.Lon > 180 {
			return hologlobe.Options{}, fmt.Errorf("marker %d (%s): coordinates %v, %v out of range", i, m.Name, m.Lat, m.Lon)
		}

		clr := hologlobe.NewColorFromHex(0x00ff00)
		if m.Color != "" {
			parsed, err := hologlobe.ParseHexColor(m.Color)
			if err != nil {
				return hologlobe.Options{}, fmt.Errorf("marker %d (%s): invalid color %q: %w", i, m.Name, m.Color, err)
			}
			clr = parsed
		}

		opts.Locations = append(opts.Locations, hologlobe.GeoPoint{
			Name:      m.Name,
			Latitude:  m.Lat,
			Longitude: m.Lon,
			Color:     clr,
		})
	}

	return opts, nil
}
