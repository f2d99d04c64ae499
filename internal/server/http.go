package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	mcpsrv "github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/DevDugg/n8n-mcp-sub001/internal/config"
)

// RunHTTP serves MCP over streamable HTTP at /mcp until ctx is
// cancelled, then drains in-flight requests.
func (s *Server) RunHTTP(ctx context.Context) error {
	streamable := mcpsrv.NewStreamableHTTPServer(s.mcp)

	limiter := rate.NewLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.RateLimit)

	var handler http.Handler = streamable
	handler = withAuth(s.cfg.AuthToken, handler)
	handler = withRateLimit(limiter, handler)
	handler = withCORS(s.cfg.CORSOrigin, handler)
	handler = withRequestID(s.log, handler)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok"}`)
	})

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info().Str("mode", config.ModeHTTP).Str("addr", addr).Msg("serving MCP")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
