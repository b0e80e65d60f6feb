package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe3d/internal/audio"
	"github.com/rocketscienceinc/tictactoe3d/internal/config"
	"github.com/rocketscienceinc/tictactoe3d/internal/render"
	"github.com/rocketscienceinc/tictactoe3d/internal/terminal"
	"github.com/rocketscienceinc/tictactoe3d/internal/usecase"
)

var ErrNoFrontend = errors.New("no frontend to run")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	controller, err := NewController(logger, conf)
	if err != nil {
		return err
	}

	if conf.Sound.Enabled {
		speaker := audio.NewSpeaker()
		if err = speaker.Initialize(); err != nil {
			// the game is playable without sound
			log.Warn("sound disabled", "error", err)
		} else {
			defer speaker.Close()
			controller.Subscribe(audio.NewCues(logger, speaker, conf.Sound.Volume))
		}
	}

	log.Info("Starting frontend", "frontend", conf.Frontend, "session", controller.Session().ID)

	switch conf.Frontend {
	case config.FrontendWindow:
		err = render.Run(ctx, logger, controller, conf.Window, conf.Timing.Placement)
	case config.FrontendTerminal:
		err = terminal.Run(ctx, logger, controller, terminal.Options{TPS: conf.Window.TPS})
	default:
		return fmt.Errorf("%w: %q", ErrNoFrontend, conf.Frontend)
	}

	if err != nil {
		return fmt.Errorf("%s frontend error: %w", conf.Frontend, err)
	}

	log.Info("Application stopped")

	return nil
}

// NewController - the game controller configured with the player colors and
// the confirmation delay.
func NewController(logger *slog.Logger, conf *config.Config) (*usecase.GameController, error) {
	colorX, colorO, err := conf.Colors.Parse()
	if err != nil {
		return nil, fmt.Errorf("could not parse colors: %w", err)
	}

	return usecase.NewGameController(logger, usecase.Options{
		ConfirmDelay: conf.Timing.Confirmation,
		ColorX:       colorX,
		ColorO:       colorO,
	}), nil
}
