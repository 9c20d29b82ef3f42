package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/polyroids_host_key"
	defaultIdleTimeout = 2 * time.Minute
	shutdownTimeout    = 10 * time.Second
)

var (
	flagHost        string
	flagPort        string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the game over SSH",
	Long: `Start an SSH server. Every connection plays its own game; nothing is
shared between sessions.

Flag defaults can be set with POLYROIDS_SSH_HOST, POLYROIDS_SSH_PORT,
POLYROIDS_SSH_HOST_KEY, POLYROIDS_SSH_IDLE_TIMEOUT and
POLYROIDS_SSH_MAX_SESSIONS.

Examples:
  polyroids serve
  polyroids serve --port 2222 --host-key ./host_key

Players connect with:
  ssh -t localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHost, "host", config.GetEnv("POLYROIDS_SSH_HOST", defaultHost), "Listen host")
	serveCmd.Flags().StringVar(&flagPort, "port", config.GetEnv("POLYROIDS_SSH_PORT", defaultPort), "Listen port")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", config.GetEnv("POLYROIDS_SSH_HOST_KEY", defaultHostKeyPath), "Host key path (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout",
		config.GetEnvDuration("POLYROIDS_SSH_IDLE_TIMEOUT", defaultIdleTimeout), "Disconnect players idle this long (0 = never)")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions",
		config.GetEnvInt("POLYROIDS_SSH_MAX_SESSIONS", 0), "Concurrent game limit (0 = unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "polyroids-ssh")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(flagHost, flagPort)
	host := &gameHost{cfg: cfg, logger: logger, idleTimeout: flagIdleTimeout, maxSessions: flagMaxSessions}

	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			host.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(_ ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if flagHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(flagHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create ssh server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting SSH server", "address", addr, "host_key", flagHostKey)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down...", "sessions", host.active())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// gameHost runs one independent game per SSH session.
type gameHost struct {
	cfg         config.Config
	logger      *log.Logger
	idleTimeout time.Duration
	maxSessions int // 0 = unlimited

	mu       sync.Mutex
	sessions int
}

func (h *gameHost) active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions
}

// acquire reserves a session slot. It fails when the host is full.
func (h *gameHost) acquire() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.maxSessions > 0 && h.sessions >= h.maxSessions {
		return false
	}
	h.sessions++
	return true
}

func (h *gameHost) release() {
	h.mu.Lock()
	h.sessions--
	h.mu.Unlock()
}

// middleware plays a game on the session's terminal until the player quits
// or disconnects.
func (h *gameHost) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := h.logger.With("session", uuid.NewString(), "user", sess.User())
		if !h.acquire() {
			logger.Warn("session rejected, server full", "max", h.maxSessions)
			fmt.Fprintln(sess, "Server full, try again later.")
			return
		}
		defer h.release()

		logger.Info("game session started", "term", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

		// Terminal size follows window change events
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		opts := loop.Options{
			Config:       h.cfg,
			Seed:         flagSeed,
			TermSizeFunc: sizeTracker.getSize,
			Profile:      termenv.ANSI256,
			IdleTimeout:  h.idleTimeout,
			Logger:       logger,
		}
		if err := loop.Run(sess.Context(), bufio.NewReader(sess), sess, opts); err != nil {
			logger.Error("game error", "error", err)
		}

		logger.Info("game session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
