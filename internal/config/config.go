// Package config handles loading and saving of the gizmo tool settings.
package config

// Config holds all tool settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Gizmo   GizmoConfig   `yaml:"gizmo"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings of the viewer and the render size of snapshots.
type WindowConfig struct {
	Title          string  `yaml:"title"`
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Fullscreen     bool    `yaml:"fullscreen"`
	VSync          bool    `yaml:"vsync"`
	PixelsPerPoint float64 `yaml:"pixels_per_point"`
	Background     Color   `yaml:"background"`
}

// CameraConfig holds the initial orbit camera. Angles are in degrees.
type CameraConfig struct {
	Target       [3]float64 `yaml:"target"`
	Distance     float64    `yaml:"distance"`
	Yaw          float64    `yaml:"yaw"`
	Pitch        float64    `yaml:"pitch"`
	FOV          float64    `yaml:"fov"`
	Near         float64    `yaml:"near"`
	Far          float64    `yaml:"far"`
	Orthographic bool       `yaml:"orthographic"`
}

// GizmoConfig holds handle selection, snapping and style.
type GizmoConfig struct {
	Modes       []string `yaml:"modes"`       // Handle or group names, e.g. "translate", "rotate_x"
	Orientation string   `yaml:"orientation"` // "global" or "local"
	Pivot       string   `yaml:"pivot"`       // "median" or "individual", for multiple targets

	Snapping     bool    `yaml:"snapping"`
	SnapAngle    float64 `yaml:"snap_angle"` // Degrees
	SnapDistance float64 `yaml:"snap_distance"`
	SnapScale    float64 `yaml:"snap_scale"`

	Visuals VisualsConfig `yaml:"visuals"`
}

// VisualsConfig mirrors gizmo.Visuals with YAML friendly colors.
type VisualsConfig struct {
	XColor         Color   `yaml:"x_color"`
	YColor         Color   `yaml:"y_color"`
	ZColor         Color   `yaml:"z_color"`
	SColor         Color   `yaml:"s_color"`
	HighlightColor Color   `yaml:"highlight_color"`
	InactiveAlpha  float64 `yaml:"inactive_alpha"`
	HighlightAlpha float64 `yaml:"highlight_alpha"`
	StrokeWidth    float64 `yaml:"stroke_width"`
	Size           float64 `yaml:"size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:          "Midgard Gizmo",
			Width:          1280,
			Height:         720,
			VSync:          true,
			PixelsPerPoint: 1,
			Background:     Color{30, 32, 36, 255},
		},
		Camera: CameraConfig{
			Distance: 8,
			Yaw:      35,
			Pitch:    25,
			FOV:      45,
			Near:     0.1,
			Far:      1000,
		},
		Gizmo: GizmoConfig{
			Modes:        []string{"all"},
			Orientation:  "global",
			Pivot:        "median",
			SnapAngle:    5.625,
			SnapDistance: 0.1,
			SnapScale:    0.1,
			Visuals: VisualsConfig{
				XColor:         Color{255, 0, 125, 255},
				YColor:         Color{0, 255, 125, 255},
				ZColor:         Color{0, 125, 255, 255},
				SColor:         Color{255, 255, 255, 255},
				InactiveAlpha:  0.7,
				HighlightAlpha: 1.0,
				StrokeWidth:    4,
				Size:           75,
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
