package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"crystalviz/internal/chem"
	"crystalviz/internal/logutil"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// The 3D viewport fills the left side; the energy diagram panel the
	// right side.
	DiagramPanelWidth = 420

	// UI parameter ranges
	DistanceMin = 1.0
	DistanceMax = 4.0
	ScaleMin    = 0.2
	ScaleMax    = 2.0

	// Slider geometry
	SliderWidth  = 220
	SliderHeight = 16

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 28

	// Camera
	CameraZoomMin  = 4.0
	CameraZoomMax  = 20.0
	CameraDragGain = 0.008

	// GIF export
	ExportFrames     = 64
	ExportFrameDelay = 5 // hundredths of a second
	ExportSize       = 480
)

// Settings are the startup knobs that can come from the environment.
// Everything else is a compile-time constant above.
type Settings struct {
	WindowWidth    int
	WindowHeight   int
	MeshResolution int
	Sonify         bool
}

// Load reads an optional .env file and the process environment.
// A missing .env is fine; malformed numeric values are errors.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logutil.Warnf("config: could not read .env: %v", err)
	}

	s := Settings{
		WindowWidth:    WindowWidth,
		WindowHeight:   WindowHeight,
		MeshResolution: chem.DefaultResolution,
		Sonify:         true,
	}
	if err := intFromEnv("WINDOW_WIDTH", &s.WindowWidth); err != nil {
		return s, err
	}
	if err := intFromEnv("WINDOW_HEIGHT", &s.WindowHeight); err != nil {
		return s, err
	}
	if err := intFromEnv("MESH_RESOLUTION", &s.MeshResolution); err != nil {
		return s, err
	}
	if v := os.Getenv("SONIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("config: SONIFY=%q: %w", v, err)
		}
		s.Sonify = b
	}
	if lv := os.Getenv("LOG_LEVEL"); lv != "" {
		logutil.SetLevel(logutil.ParseLevel(lv))
	}

	if s.WindowWidth <= DiagramPanelWidth || s.WindowHeight <= 0 {
		return s, fmt.Errorf("config: window %dx%d too small", s.WindowWidth, s.WindowHeight)
	}
	if s.MeshResolution < 2 {
		return s, fmt.Errorf("config: MESH_RESOLUTION must be >= 2, got %d", s.MeshResolution)
	}
	return s, nil
}

func intFromEnv(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}
