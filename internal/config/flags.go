package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Bind it to a command's flag set with
// BindFlags; only flags the user actually set override the config.
type Flags struct {
	fs *pflag.FlagSet

	ConfigPath  string
	Debug       bool
	Width       int
	Height      int
	Fullscreen  bool
	Modes       []string
	Orientation string
	Snapping    bool
	LogFile     string
}

// BindFlags registers the override flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to gizmo.yaml")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	fs.IntVar(&f.Width, "width", 0, "viewport width in pixels")
	fs.IntVar(&f.Height, "height", 0, "viewport height in pixels")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "run the viewer fullscreen")
	fs.StringSliceVarP(&f.Modes, "modes", "m", nil, "enabled handles (translate, rotate, scale, arcball, all or single names like rotate_x)")
	fs.StringVar(&f.Orientation, "orientation", "", "handle orientation: global or local")
	fs.BoolVar(&f.Snapping, "snap", false, "enable snapping")
	fs.StringVar(&f.LogFile, "log-file", "", "also write logs to this rotating file")
	return f
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.changed("fullscreen") {
		cfg.Window.Fullscreen = f.Fullscreen
	}
	if len(f.Modes) > 0 {
		cfg.Gizmo.Modes = append([]string(nil), f.Modes...)
	}
	if f.Orientation != "" {
		cfg.Gizmo.Orientation = f.Orientation
	}
	if f.changed("snap") {
		cfg.Gizmo.Snapping = f.Snapping
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
