// Package loop drives a game at a fixed frame rate: Input → Update → Draw.
package loop

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/game"
	"github.com/tomz197/polyroids/internal/input"
)

// maxFrameDelta caps the simulated time of one frame so a stalled terminal
// does not teleport objects through each other.
const maxFrameDelta = 100 * time.Millisecond

// Options configures a game session.
type Options struct {
	Config       config.Config
	Seed         int64 // 0 picks a time-based seed
	TermSizeFunc draw.TermSizeFunc
	Profile      termenv.Profile
	IdleTimeout  time.Duration // 0 disables the idle disconnect
	Logger       *log.Logger
}

// Runner performs one frame per Tick.
type Runner struct {
	game    *game.Game
	source  input.Source
	surface draw.Surface
	logger  *log.Logger

	idleTimeout time.Duration
	idle        time.Duration
}

// NewRunner wires a game to its input source and output surface.
func NewRunner(g *game.Game, src input.Source, surface draw.Surface, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:    g,
		source:  src,
		surface: surface,
		logger:  logger,
	}
}

// SetIdleTimeout stops the runner after d without any input. 0 disables it.
func (r *Runner) SetIdleTimeout(d time.Duration) {
	r.idleTimeout = d
}

// Tick polls input, steps the game by delta and draws the frame.
// It returns false when the session should end.
func (r *Runner) Tick(delta time.Duration) (bool, error) {
	in := r.source.Poll()
	if in.Quit {
		r.logger.Debug("quit requested", "score", r.game.Score)
		return false, nil
	}

	if in != input.Empty() {
		r.idle = 0
	} else {
		r.idle += delta
	}
	if r.idleTimeout > 0 && r.idle >= r.idleTimeout {
		r.logger.Info("idle timeout", "idle", r.idle)
		return false, nil
	}

	wasDead := r.game.State() == game.StatePlayerDead
	r.game.Step(min(delta, maxFrameDelta), in)

	// Keys held through the death screen must not act on the new ship
	if wasDead && r.game.State() == game.StatePlaying {
		if rs, ok := r.source.(input.Resetter); ok {
			rs.Reset()
		}
	}

	r.surface.Begin()
	r.game.Draw(r.surface)
	if err := r.surface.End(); err != nil {
		return false, fmt.Errorf("present frame: %w", err)
	}
	return true, nil
}

// Run plays one game, reading keys from r and drawing to w, until the
// player quits, the input ends or ctx is done.
func Run(ctx context.Context, r io.ByteReader, w io.Writer, opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(cfg, rand.New(rand.NewSource(seed)), logger)
	stream := input.StartStream(r, time.Duration(cfg.Runtime.InputHoldMS)*time.Millisecond)

	surface := draw.NewTerminalSurface(w, draw.SurfaceOptions{
		LogicalWidth:  cfg.Screen.Width,
		LogicalHeight: cfg.Screen.Height,
		TermSizeFunc:  opts.TermSizeFunc,
		Profile:       opts.Profile,
	})
	surface.Open()
	defer surface.Close()

	runner := NewRunner(g, stream, surface, logger)
	runner.SetIdleTimeout(opts.IdleTimeout)

	logger.Debug("game started", "seed", seed, "fps", cfg.Runtime.FPS, "broad_phase", cfg.Collision.BroadPhase)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Runtime.FPS))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now

			running, err := runner.Tick(delta)
			if err != nil {
				return err
			}
			if !running {
				return nil
			}
		}
	}
}
