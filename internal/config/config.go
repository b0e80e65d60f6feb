package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidTiming   = errors.New("invalid timing")
	ErrInvalidWindow   = errors.New("invalid window size")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Frontend string `yaml:"frontend" env:"FRONTEND" env-default:"window"`
	Window   Window `yaml:"window"`
	Colors   Colors `yaml:"colors"`
	Timing   Timing `yaml:"timing"`
	Sound    Sound  `yaml:"sound"`
}

type Window struct {
	Title  string `yaml:"title" env-default:"3D Tic-Tac-Toe"`
	Width  int    `yaml:"width" env-default:"1280"`
	Height int    `yaml:"height" env-default:"720"`
	TPS    int    `yaml:"tps" env-default:"60"`
}

type Colors struct {
	X string `yaml:"x" env:"COLOR_X" env-default:"#ff0000"`
	O string `yaml:"o" env:"COLOR_O" env-default:"#0000ff"`
}

type Timing struct {
	// Placement is the length of the scale-in animation of a piece.
	Placement time.Duration `yaml:"placement" env-default:"500ms"`
	// Confirmation is the delay between a pick and its win check.
	Confirmation time.Duration `yaml:"confirmation" env-default:"600ms"`
}

type Sound struct {
	Enabled bool `yaml:"enabled" env:"SOUND" env-default:"false"`
	// Volume is relative, in halvings: 0 is unchanged, -1 is half as loud.
	Volume float64 `yaml:"volume" env-default:"-1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string, required bool) *Config {
	config, err := Load(path, required)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the file when it exists. A missing file is an error when
// required, otherwise only the environment is read.
func Load(path string, required bool) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	case required:
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
	default:
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, that.Frontend)
	}

	if _, _, err := that.Colors.Parse(); err != nil {
		return err
	}

	if that.Timing.Placement <= 0 || that.Timing.Confirmation <= 0 {
		return fmt.Errorf("%w: placement %s, confirmation %s", ErrInvalidTiming, that.Timing.Placement, that.Timing.Confirmation)
	}

	if that.Window.Width <= 0 || that.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, that.Window.Width, that.Window.Height)
	}

	return nil
}

// Parse - both player colors as hex strings, e.g. "#ff0000".
func (that *Colors) Parse() (colorful.Color, colorful.Color, error) {
	x, err := colorful.Hex(that.X)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, fmt.Errorf("%w for X: %q", ErrInvalidColor, that.X)
	}

	o, err := colorful.Hex(that.O)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, fmt.Errorf("%w for O: %q", ErrInvalidColor, that.O)
	}

	return x, o, nil
}
