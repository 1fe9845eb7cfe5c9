// Package widget implements the upload widget controller: file selection,
// submission to the report server and rendering of the returned report.
//
// The controller holds the whole UI state explicitly. UI bindings translate
// their events into controller calls and draw State() afterwards.
package widget

import (
	"context"
	"sync"

	"certidao-widget/internal/domain"
	"certidao-widget/internal/render"
	apperrors "certidao-widget/pkg/errors"
)

// Controller is the upload widget state machine
type Controller struct {
	uploader  domain.Uploader
	renderer  *render.Renderer
	notifier  domain.Notifier
	clipboard domain.Clipboard
	logger    domain.Logger

	mu            sync.Mutex
	selected      *domain.SelectedFile
	dragActive    bool
	submitEnabled bool
	loading       bool
	pending       bool
	resultVisible bool
	result        *domain.View
}

// NewController creates a controller with nothing selected and submit
// disabled.
func NewController(
	uploader domain.Uploader,
	renderer *render.Renderer,
	notifier domain.Notifier,
	clipboard domain.Clipboard,
	logger domain.Logger,
) *Controller {
	return &Controller{
		uploader:  uploader,
		renderer:  renderer,
		notifier:  notifier,
		clipboard: clipboard,
		logger:    logger,
	}
}

// Pick stages a file chosen with the native picker. The picker filter is
// trusted, so the type is not checked. A nil file (picker dismissed) is a
// no-op.
func (c *Controller) Pick(file *domain.SelectedFile) error {
	if file == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending {
		c.logger.Debug("Ignoring pick during submission", "file", file.Name)
		return domain.ErrSubmissionPending
	}
	c.selectLocked(file)
	return nil
}

// DragOver marks the drop zone active.
func (c *Controller) DragOver() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.pending {
		c.dragActive = true
	}
}

// DragLeave clears the drop zone highlight.
func (c *Controller) DragLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dragActive = false
}

// Drop stages the first dropped file if its declared type is exactly
// application/pdf. Anything else raises an alert and keeps the previous
// selection.
func (c *Controller) Drop(files ...*domain.SelectedFile) error {
	c.mu.Lock()
	c.dragActive = false

	if len(files) == 0 || files[0] == nil {
		c.mu.Unlock()
		return nil
	}
	file := files[0]

	if c.pending {
		c.mu.Unlock()
		c.logger.Debug("Ignoring drop during submission", "file", file.Name)
		return domain.ErrSubmissionPending
	}

	if !file.IsPDF() {
		c.mu.Unlock()
		c.logger.Debug("Rejected dropped file", "file", file.Name, "type", file.Type)
		c.notifier.Alert(AlertNotPDF)
		return domain.ErrNotPDF
	}

	c.selectLocked(file)
	c.mu.Unlock()
	return nil
}

func (c *Controller) selectLocked(file *domain.SelectedFile) {
	c.selected = file
	c.submitEnabled = true
	c.logger.Debug("File selected", "file", file.Name, "type", file.Type, "size", file.Size)
}

// Submit uploads the selected file and renders the answer. It is a no-op
// without a selection or while another submission is in flight. Every
// failure ends in one alert; loading is hidden and submit re-enabled on
// every path.
//
// The returned error is informational: it has already been surfaced to the
// user.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.selected == nil {
		c.mu.Unlock()
		return domain.ErrNoFileSelected
	}
	if c.pending || !c.submitEnabled {
		c.mu.Unlock()
		return domain.ErrSubmissionPending
	}
	file := c.selected
	c.pending = true
	c.submitEnabled = false
	c.loading = true
	c.resultVisible = false
	c.dragActive = false
	c.mu.Unlock()

	defer c.finishSubmit()

	c.logger.Info("Submitting file", "file", file.Name)

	result, err := c.uploader.Upload(ctx, file)
	if err != nil {
		c.notifier.Alert(alertFor(err))
		return err
	}

	c.Render(result.Report, result.ReportFile)
	return nil
}

func (c *Controller) finishSubmit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = false
	c.submitEnabled = true
	c.pending = false
}

// alertFor picks the user text for a failed upload.
func alertFor(err error) string {
	appErr, ok := apperrors.As(err)
	if !ok {
		return AlertCommunication
	}
	switch appErr.Type {
	case apperrors.ErrorTypeServer:
		if appErr.Message != "" {
			return appErr.Message
		}
		return AlertProcessing
	default:
		return AlertCommunication
	}
}

// Render shows report in the result panel with a download reference for
// filename.
func (c *Controller) Render(report domain.Report, filename string) {
	view := c.renderer.Render(report, filename)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.result = view
	c.resultVisible = true
}

// Copy writes the text of every rendered card to the clipboard and confirms
// with an alert. A clipboard failure is logged and not surfaced.
func (c *Controller) Copy(ctx context.Context) (string, error) {
	c.mu.Lock()
	if !c.resultVisible || c.result == nil {
		c.mu.Unlock()
		return "", domain.ErrNothingToCopy
	}
	text := render.Text(c.result)
	c.mu.Unlock()

	if err := c.clipboard.WriteText(ctx, text); err != nil {
		c.logger.Warn("Clipboard write failed", "error", err)
		return "", err
	}
	c.notifier.Alert(AlertCopied)
	return text, nil
}

// State returns a snapshot of the view state.
func (c *Controller) State() domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := domain.ViewState{
		DropZoneLabel:  DefaultDropZoneLabel,
		DragActive:     c.dragActive,
		DropZoneLocked: c.pending,
		SubmitEnabled:  c.submitEnabled,
		Loading:        c.loading,
		ResultVisible:  c.resultVisible,
	}
	if c.selected != nil {
		state.SelectedFile = c.selected.Name
		state.DropZoneLabel = c.selected.Name
	}
	if c.resultVisible {
		state.Result = c.result
	}
	return state
}

// Selected returns the staged file, or nil.
func (c *Controller) Selected() *domain.SelectedFile {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selected
}
