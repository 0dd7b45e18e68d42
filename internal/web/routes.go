// Package web exposes the gallery fragments over HTTP.
package web

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/gallery/internal/gallery"
	"github.com/ziadkadry99/gallery/internal/views"
)

// Handler serves the page shell, list and modal fragments.
type Handler struct {
	renderer *views.Renderer
	logger   *zap.Logger
}

// NewHandler creates a Handler. A nil logger disables logging.
func NewHandler(renderer *views.Renderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{renderer: renderer, logger: logger}
}

// RegisterRoutes mounts the gallery routes onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(views.PathIndex, h.handleIndex)
	r.Get(views.PathMore, h.handleMore)
	r.Get(views.PathModalOpen, h.handleModal)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.renderer.Shell)
}

func (h *Handler) handleMore(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.renderer.List)
	h.logger.Debug("served more images",
		zap.Int64("counter", h.renderer.Counter().Value()),
		zap.String("request_id", middleware.GetReqID(r.Context())))
}

func (h *Handler) handleModal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ref, err := referenceFromQuery(q)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	dir := gallery.ParseDirection(q.Get("dir"))

	h.render(w, r, http.StatusOK, func(buf io.Writer) error {
		return h.renderer.Modal(buf, ref, dir)
	})
}

// referenceFromQuery reads the image reference from either the composite
// "url" parameter or the "base"/"id" pair. "url" wins when both are present;
// a request carrying neither is treated as an empty "url".
func referenceFromQuery(q url.Values) (gallery.Reference, error) {
	if !q.Has("url") && q.Has("id") {
		return gallery.ParseReferenceParts(q.Get("base"), q.Get("id"))
	}
	return gallery.ParseReference(q.Get("url"))
}

// render buffers the output of fn; if fn fails only a 500 is written.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		h.logger.Error("rendering fragment",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	ref := uuid.NewString()
	msg := "invalid request"
	if errors.Is(err, gallery.ErrMalformedReference) {
		msg = "invalid image reference"
	}

	h.logger.Warn("rejecting modal request",
		zap.String("error_ref", ref),
		zap.String("query", r.URL.RawQuery),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err))

	h.render(w, r, http.StatusBadRequest, func(buf io.Writer) error {
		return h.renderer.Error(buf, msg, ref)
	})
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
