// Package httpapi exposes the bucket-notification webhook. The object store
// is configured to POST its finalize events here; the handler normalizes
// them and feeds the ingestion pipeline.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hyperaware/doorbell-relay/internal/logging"
	"github.com/hyperaware/doorbell-relay/internal/relay/eventsource"
)

// maxEventBody caps webhook payloads. Bucket notifications are small; a
// larger body is not a notification.
const maxEventBody = 1 << 20

type Server struct {
	addr    string
	handler eventsource.ObjectHandler
	logger  logging.Logger
}

func NewServer(addr string, handler eventsource.ObjectHandler, logger logging.Logger) *Server {
	return &Server{
		addr:    addr,
		handler: handler,
		logger:  logger.With("module", "httpapi"),
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/events/storage", s.handleStorageEvents)

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleStorageEvents accepts a bucket-notification batch. A payload that
// fails schema validation gets a 400; events for objects that are not
// uploads are already filtered out by the parser. Pipeline failures do not
// surface here, so the object store never retries a half-processed batch.
func (s *Server) handleStorageEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBody))
	if err != nil {
		http.Error(w, "error reading body", http.StatusBadRequest)
		return
	}

	events, err := eventsource.ParseS3Event(body)
	if err != nil {
		s.logger.Warn(r.Context(), "rejecting malformed storage event", "error", err)
		http.Error(w, "malformed event", http.StatusBadRequest)
		return
	}

	for _, ev := range events {
		s.logger.Info(r.Context(), "storage object finalized", "key", ev.Key)
		s.handler.HandleObjectFinalized(r.Context(), ev)
	}

	w.WriteHeader(http.StatusOK)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "error shutting down webhook server", "error", err)
		}
	}()

	s.logger.Info(ctx, "starting webhook server", "addr", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
