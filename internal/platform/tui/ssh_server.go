package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.champions/host_key.
	HostKeyPath string

	// DBPath is the path to the arcade database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the game frame rate of every session.
	TickRate int

	// LogLevel filters the server log. The zero value is info.
	LogLevel log.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.champions/champions.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
	}
}

// SSHServer serves the arcade over SSH. Every SSH user plays on their
// own profile; all profiles share one database.
type SSHServer struct {
	config   SSHServerConfig
	arcade   config.Config
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	mu       sync.Mutex
	profiles map[string]*sharedProfile
}

// sharedProfile is a profile held open while its user has sessions.
type sharedProfile struct {
	profile  *Profile
	sessions int
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, arcade config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           cfg.LogLevel,
		Prefix:          "champions-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		// Sessions still run, their records live in memory.
		logger.Warn("could not open database", "error", err)
	}

	srv := &SSHServer{
		config:   cfg,
		arcade:   arcade,
		store:    store,
		logger:   logger,
		profiles: make(map[string]*sharedProfile),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".champions", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(), // sessions without a PTY are refused
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func profileName(user string) string {
	if user == "" {
		return DefaultProfile
	}
	return user
}

// acquire returns the shared profile of user, opening it on first use.
// Concurrent sessions of one user see the same ledger.
func (s *SSHServer) acquire(user string) *Profile {
	user = profileName(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.profiles[user]
	if !ok {
		sp = &sharedProfile{profile: NewProfile(s.store, user, s.arcade, s.logger)}
		s.profiles[user] = sp
	}
	sp.sessions++
	return sp.profile
}

// release drops the profile of user once their last session has ended.
func (s *SSHServer) release(user string) {
	user = profileName(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.profiles[user]
	if !ok {
		return
	}
	sp.sessions--
	if sp.sessions <= 0 {
		delete(s.profiles, user)
	}
}

// profile returns the profile held for user by the session middleware.
func (s *SSHServer) profile(user string) *Profile {
	user = profileName(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	if sp, ok := s.profiles[user]; ok {
		return sp.profile
	}
	return NewProfile(s.store, user, s.arcade, s.logger)
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(s.profile(sshSession.User()), cfg)
	s.logger.Debug("session model created", "user", sshSession.User(), "session", model.ID())

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionMiddleware holds the user's profile open for the length of the
// session and logs session events.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		s.acquire(sshSession.User())
		defer s.release(sshSession.User())

		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
