// Package server hosts the game over SSH. Every connection gets its own
// screen and its own shop; nothing is shared between players except the
// rules and the history store.
package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"donut-tell-me/assets"
	"donut-tell-me/internal/config"
	"donut-tell-me/internal/game"
	internalssh "donut-tell-me/internal/ssh"
	"donut-tell-me/internal/store"

	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/time/rate"
)

// maxNameBytes caps how much of the SSH username is shown in the shop.
const maxNameBytes = 16

const shutdownGrace = 5 * time.Second

// Options configures a Server.
type Options struct {
	Config  config.ServerConfig
	Shop    config.ShopConfig
	Rules   game.Rules
	Catalog *assets.Catalog
	Store   store.Store
	Logger  *zap.Logger
}

// Server accepts SSH connections and runs one game per connection.
type Server struct {
	opts    Options
	log     *zap.Logger
	limiter *rate.Limiter
	active  atomic.Int64
	ssh     *gossh.Server
}

// New prepares a server, loading or creating its host key.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &Server{
		opts:    opts,
		log:     opts.Logger,
		limiter: rate.NewLimiter(rate.Limit(opts.Config.SessionsPerSecond), opts.Config.SessionBurst),
	}
	signer, err := loadOrCreateHostKey(opts.Config.HostKey, s.log)
	if err != nil {
		return nil, err
	}
	s.ssh = &gossh.Server{
		Addr:    fmt.Sprintf(":%d", opts.Config.Port),
		Handler: s.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		// Any client may connect; there is no account system.
		HostSigners: []gossh.Signer{signer},
	}
	return s, nil
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.ssh.ListenAndServe() }()
	s.log.Info("ssh server listening",
		zap.String("addr", s.ssh.Addr),
		zap.Int("max_sessions", s.opts.Config.MaxSessions),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, gossh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
		s.log.Info("ssh server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.ssh.Shutdown(shutdownCtx); err != nil {
			return s.ssh.Close()
		}
		return nil
	}
}

// admit reserves a session slot. The returned release func must be called
// once the session ends.
func (s *Server) admit() (release func(), reason string) {
	if !s.limiter.Allow() {
		return nil, "Too many players are connecting right now. Try again in a moment."
	}
	if n := s.active.Add(1); n > int64(s.opts.Config.MaxSessions) {
		s.active.Add(-1)
		return nil, "The shop is full. Try again later."
	}
	return func() { s.active.Add(-1) }, ""
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (s *Server) handleSession(sess gossh.Session) {
	log := s.log.With(zap.String("remote", sess.RemoteAddr().String()))

	release, reason := s.admit()
	if release == nil {
		log.Warn("connection refused", zap.String("reason", reason))
		fmt.Fprintln(sess, reason)
		_ = sess.Exit(1)
		return
	}
	defer release()

	if _, _, ok := sess.Pty(); !ok {
		fmt.Fprintf(sess, "This game requires a PTY. Connect with: ssh -t -p %d <host>\n", s.opts.Config.Port)
		_ = sess.Exit(1)
		return
	}
	screen, err := internalssh.NewScreen(sess)
	if err != nil {
		log.Warn("screen setup failed", zap.Error(err))
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		return
	}

	player := sanitizeName(sess.User())
	if player == "" {
		player = "guest"
	}
	log = log.With(zap.String("player", player))
	log.Info("player connected", zap.String("term", internalssh.Term(sess)), zap.Int64("active", s.active.Load()))

	g := game.New(screen, game.Options{
		Player:  player,
		Shop:    s.opts.Shop,
		Rules:   s.opts.Rules,
		Catalog: s.opts.Catalog,
		Store:   s.opts.Store,
		Logger:  s.log,
	})
	g.Run(sess.Context())
	log.Info("player disconnected")
}

// sanitizeName keeps the printable runes of an SSH username, cut to
// maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
		log.Warn("host key unreadable, generating a new one", zap.String("path", path))
	}

	log.Info("generating ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; a fresh key next start only upsets known_hosts.
	block, err := xssh.MarshalPrivateKey(key, "donut-tell-me server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(block), 0o600)
	}
	if err != nil {
		log.Warn("persist host key failed", zap.String("path", path), zap.Error(err))
	}
	return signer, nil
}
