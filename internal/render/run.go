package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rocketscienceinc/tictactoe3d/internal/config"
	"github.com/rocketscienceinc/tictactoe3d/internal/usecase"
)

// Run opens the window and blocks until it is closed or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, controller *usecase.GameController, window config.Window, placement time.Duration) error {
	game := NewGame(ctx, logger, controller, Options{
		Width:     window.Width,
		Height:    window.Height,
		TPS:       window.TPS,
		Placement: placement,
	})

	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if window.TPS > 0 {
		ebiten.SetTPS(window.TPS)
	}

	game.logger.Info("window opened", "width", window.Width, "height", window.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window closed with error: %w", err)
	}

	return nil
}
