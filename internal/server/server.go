package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/HMasataka/servedir/internal/browse"
	"github.com/HMasataka/servedir/internal/config"
	"github.com/HMasataka/servedir/internal/static"
)

// ErrAddrInUse marks a bind failure caused by another process already
// holding the requested port. main matches on it to print an actionable
// message instead of the raw errno.
var ErrAddrInUse = errors.New("address already in use")

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg    config.Config
	opener browse.Opener
}

func New(cfg config.Config, opener browse.Opener) *Server {
	return &Server{cfg: cfg, opener: opener}
}

// Run verifies the content root, binds the listener, opens the browser
// and serves until ctx is cancelled. The root is checked before anything
// is bound so a misconfigured server never holds the port. The content
// root is passed to the handler explicitly; the process working
// directory is never touched.
func (s *Server) Run(ctx context.Context) error {
	info, err := os.Stat(s.cfg.Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("content root %s does not exist", s.cfg.Root)
		}
		return fmt.Errorf("content root %s: %w", s.cfg.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content root %s is not a directory", s.cfg.Root)
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("listen on %s: %w", s.cfg.Addr, ErrAddrInUse)
		}
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}

	url := serveURL(ln.Addr())
	slog.Info("serving", slog.String("root", s.cfg.Root), slog.String("url", url))

	if s.cfg.OpenBrowser {
		// Best effort. A headless host without a browser is not a
		// reason to stop serving.
		if err := s.opener.Open(url); err != nil {
			slog.Warn("failed to open browser", slog.String("url", url), slog.String("error", err.Error()))
		}
	}

	srv := &http.Server{
		Handler: static.Handler(os.DirFS(s.cfg.Root), s.cfg.Index),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}

// serveURL renders the browsable URL for a bound address. The listener
// may be on all interfaces; localhost is what the browser should visit.
func serveURL(addr net.Addr) string {
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://localhost/"
	}
	return fmt.Sprintf("http://localhost:%s/", port)
}
