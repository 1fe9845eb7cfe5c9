package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"certidao-widget/internal/domain"
	"certidao-widget/internal/widget"

	"github.com/gorilla/mux"
)

// multipart overhead allowed on top of the file size cap
const formOverhead = 1 << 20

// WidgetHandler translates HTTP requests into widget events
type WidgetHandler struct {
	controller  *widget.Controller
	alerts      *widget.AlertQueue
	maxFileSize int64
	logger      domain.Logger
}

// NewWidgetHandler creates a widget handler. alerts must be the notifier
// the controller was built with.
func NewWidgetHandler(
	controller *widget.Controller,
	alerts *widget.AlertQueue,
	maxFileSize int64,
	logger domain.Logger,
) *WidgetHandler {
	return &WidgetHandler{
		controller:  controller,
		alerts:      alerts,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

type widgetResponse struct {
	domain.ViewState
	Alerts     []domain.Alert `json:"alerts"`
	CopiedText string         `json:"copied_text,omitempty"`
}

func (h *WidgetHandler) respond(w http.ResponseWriter, copied string) {
	writeJSON(w, http.StatusOK, widgetResponse{
		ViewState:  h.controller.State(),
		Alerts:     h.alerts.Pending(),
		CopiedText: copied,
	})
}

// GetState returns the current widget state and pending alerts
func (h *WidgetHandler) GetState(w http.ResponseWriter, r *http.Request) {
	h.respond(w, "")
}

// Pick handles a file chosen with the picker
func (h *WidgetHandler) Pick(w http.ResponseWriter, r *http.Request) {
	file, ok := h.readFile(w, r)
	if !ok {
		return
	}
	if err := h.controller.Pick(file); err != nil {
		h.logger.Debug("Pick ignored", "reason", err)
	}
	h.respond(w, "")
}

// Drop handles a file dropped on the drop zone. The declared type is the
// content type of the multipart part.
func (h *WidgetHandler) Drop(w http.ResponseWriter, r *http.Request) {
	file, ok := h.readFile(w, r)
	if !ok {
		return
	}
	var files []*domain.SelectedFile
	if file != nil {
		files = append(files, file)
	}
	if err := h.controller.Drop(files...); err != nil {
		h.logger.Debug("Drop rejected", "reason", err)
	}
	h.respond(w, "")
}

// DragOver toggles the drop zone highlight on
func (h *WidgetHandler) DragOver(w http.ResponseWriter, r *http.Request) {
	h.controller.DragOver()
	h.respond(w, "")
}

// DragLeave toggles the drop zone highlight off
func (h *WidgetHandler) DragLeave(w http.ResponseWriter, r *http.Request) {
	h.controller.DragLeave()
	h.respond(w, "")
}

// Submit uploads the selected file and answers once the upload settled.
// The upload is detached from the request: a page that goes away does not
// abort it.
func (h *WidgetHandler) Submit(w http.ResponseWriter, r *http.Request) {
	err := h.controller.Submit(context.WithoutCancel(r.Context()))
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNoFileSelected), errors.Is(err, domain.ErrSubmissionPending):
		h.logger.Debug("Submit ignored", "reason", err)
	default:
		h.logger.Warn("Submission failed", "error", err)
	}
	h.respond(w, "")
}

// Copy assembles the report text. The page writes copied_text to the
// browser clipboard.
func (h *WidgetHandler) Copy(w http.ResponseWriter, r *http.Request) {
	text, err := h.controller.Copy(r.Context())
	if err != nil {
		h.logger.Debug("Copy skipped", "reason", err)
	}
	h.respond(w, text)
}

// DismissAlert removes one pending alert
func (h *WidgetHandler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.alerts.Dismiss(id) {
		writeError(w, http.StatusNotFound, "Alert not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readFile extracts the "file" part. A request without one yields a nil
// file (nothing chosen). ok is false when a response was already written.
func (h *WidgetHandler) readFile(w http.ResponseWriter, r *http.Request) (*domain.SelectedFile, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+formOverhead)

	src, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return nil, false
		}
		return nil, true
	}
	defer src.Close()

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return nil, false
	}

	data, err := io.ReadAll(src)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "file", header.Filename)
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return nil, false
	}

	// Strip any path components sent by the client.
	name := strings.TrimSpace(filepath.Base(header.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "document.pdf"
	}

	return domain.NewSelectedFileFromBytes(name, header.Header.Get("Content-Type"), data), true
}
