package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"certidao-widget/internal/client"
	"certidao-widget/internal/clipboard"
	"certidao-widget/internal/domain"
	"certidao-widget/internal/render"
	"certidao-widget/internal/widget"
)

type testResponse struct {
	domain.ViewState
	Alerts     []domain.Alert `json:"alerts"`
	CopiedText string         `json:"copied_text"`
}

// newTestRouter wires the bridge against a fake report server answering
// with status and body.
func newTestRouter(t *testing.T, status int, body string, maxFileSize int64) http.Handler {
	t.Helper()
	reportServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(reportServer.Close)

	logger := NewMockHandlerLogger()
	alerts := widget.NewAlertQueue()
	clip := clipboard.NewPage()
	reportClient := client.NewReportClient(reportServer.URL, nil, logger)
	controller := widget.NewController(reportClient, render.NewRenderer(reportServer.URL), alerts, clip, logger)

	h := NewWidgetHandler(controller, alerts, maxFileSize, logger)
	return NewRouter(h, []string{"http://localhost:5173"})
}

func fileRequest(t *testing.T, path, name, mimeType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	hdr.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func do(t *testing.T, router http.Handler, req *http.Request) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var resp testResponse
	if rr.Code == http.StatusOK {
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v (%s)", err, rr.Body.String())
		}
	}
	return rr, resp
}

const successBody = `{"relatorio":{"Cartório":"X","Proprietários":[{"nome":"A"}]},"arquivo_relatorio":"r.pdf"}`

func TestWidget_InitialState(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 1<<20)

	rr, resp := do(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/widget", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if resp.SubmitEnabled || resp.Loading || resp.ResultVisible {
		t.Fatalf("unexpected initial state: %+v", resp.ViewState)
	}
	if resp.DropZoneLabel != widget.DefaultDropZoneLabel {
		t.Fatalf("unexpected label: %q", resp.DropZoneLabel)
	}
	if len(resp.Alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", resp.Alerts)
	}
}

func TestWidget_DropNonPDF(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 1<<20)

	_, resp := do(t, router, fileRequest(t, "/api/v1/widget/drop", "notes.txt", "text/plain", []byte("hello")))

	if resp.SelectedFile != "" || resp.SubmitEnabled {
		t.Fatalf("expected nothing selected, got %+v", resp.ViewState)
	}
	if len(resp.Alerts) != 1 || resp.Alerts[0].Message != widget.AlertNotPDF {
		t.Fatalf("expected not-pdf alert, got %v", resp.Alerts)
	}
}

func TestWidget_DropSubmitCopy(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 1<<20)

	_, resp := do(t, router, fileRequest(t, "/api/v1/widget/drop", "../../certidao.pdf", domain.PDFMimeType, []byte("%PDF-1.4")))
	if resp.SelectedFile != "certidao.pdf" || !resp.SubmitEnabled {
		t.Fatalf("expected pdf selected, got %+v", resp.ViewState)
	}

	_, resp = do(t, router, httptest.NewRequest(http.MethodPost, "/api/v1/widget/submit", nil))
	if !resp.ResultVisible || resp.Loading || !resp.SubmitEnabled || resp.Result == nil {
		t.Fatalf("unexpected state after submit: %+v", resp.ViewState)
	}
	if c, _ := resp.Result.Card(domain.SlotRegistryOffice); c.Text != "Cartório: X" {
		t.Fatalf("unexpected registry card: %q", c.Text)
	}
	if c, _ := resp.Result.Card(domain.SlotOwners); c.Text != "Proprietários:\n- A" {
		t.Fatalf("unexpected owners card: %q", c.Text)
	}
	if c, _ := resp.Result.Card(domain.SlotEncumbrances); c.Text != render.EncumbrancesNone {
		t.Fatalf("unexpected encumbrances card: %q", c.Text)
	}
	if !strings.HasSuffix(resp.Result.Download.Href, "/download/r.pdf") {
		t.Fatalf("unexpected download href: %q", resp.Result.Download.Href)
	}

	rendered := resp.Result
	_, resp = do(t, router, httptest.NewRequest(http.MethodPost, "/api/v1/widget/copy", nil))
	if !strings.HasPrefix(resp.CopiedText, "Cartório: X\n\n") {
		t.Fatalf("unexpected copied text: %q", resp.CopiedText)
	}
	if want := render.Text(rendered); resp.CopiedText != want {
		t.Fatalf("expected copied text to match the rendered view\nwant %q\ngot  %q", want, resp.CopiedText)
	}
	if len(resp.Alerts) != 1 || resp.Alerts[0].Message != widget.AlertCopied {
		t.Fatalf("expected copied alert, got %v", resp.Alerts)
	}
}

func TestWidget_CopyWithoutResult(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 1<<20)

	rr, resp := do(t, router, httptest.NewRequest(http.MethodPost, "/api/v1/widget/copy", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if resp.CopiedText != "" || len(resp.Alerts) != 0 {
		t.Fatalf("expected nothing copied, got %q %v", resp.CopiedText, resp.Alerts)
	}
}

func TestWidget_SubmitServerError(t *testing.T) {
	router := newTestRouter(t, http.StatusBadRequest, `{"error":"bad file"}`, 1<<20)

	do(t, router, fileRequest(t, "/api/v1/widget/pick", "a.pdf", domain.PDFMimeType, []byte("%PDF")))
	_, resp := do(t, router, httptest.NewRequest(http.MethodPost, "/api/v1/widget/submit", nil))

	if len(resp.Alerts) != 1 || resp.Alerts[0].Message != "bad file" {
		t.Fatalf("expected 'bad file' alert, got %v", resp.Alerts)
	}
	if resp.Loading || !resp.SubmitEnabled || resp.ResultVisible {
		t.Fatalf("expected interactive state, got %+v", resp.ViewState)
	}
}

func TestWidget_SubmitWithoutSelection(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 1<<20)

	_, resp := do(t, router, httptest.NewRequest(http.MethodPost, "/api/v1/widget/submit", nil))

	if resp.ResultVisible || resp.SubmitEnabled || len(resp.Alerts) != 0 {
		t.Fatalf("expected no-op, got %+v alerts=%v", resp.ViewState, resp.Alerts)
	}
}

func TestWidget_PickWithoutFileIsNoop(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 1<<20)

	rr, resp := do(t, router, httptest.NewRequest(http.MethodPost, "/api/v1/widget/pick", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if resp.SelectedFile != "" {
		t.Fatalf("expected nothing selected")
	}
}

func TestWidget_DragIndicator(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 1<<20)

	_, resp := do(t, router, httptest.NewRequest(http.MethodPost, "/api/v1/widget/dragover", nil))
	if !resp.DragActive {
		t.Fatalf("expected drag active")
	}
	_, resp = do(t, router, httptest.NewRequest(http.MethodPost, "/api/v1/widget/dragleave", nil))
	if resp.DragActive {
		t.Fatalf("expected drag inactive")
	}
}

func TestWidget_FileTooLarge(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 4)

	rr, _ := do(t, router, fileRequest(t, "/api/v1/widget/drop", "big.pdf", domain.PDFMimeType, []byte("%PDF-1.4 too big")))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", rr.Code)
	}
}

func TestWidget_DismissAlert(t *testing.T) {
	router := newTestRouter(t, http.StatusOK, successBody, 1<<20)

	_, resp := do(t, router, fileRequest(t, "/api/v1/widget/drop", "a.png", "image/png", []byte("x")))
	if len(resp.Alerts) != 1 {
		t.Fatalf("expected one alert, got %v", resp.Alerts)
	}
	id := resp.Alerts[0].ID

	rr, _ := do(t, router, httptest.NewRequest(http.MethodDelete, "/api/v1/widget/alerts/"+id, nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rr.Code)
	}
	rr, _ = do(t, router, httptest.NewRequest(http.MethodDelete, "/api/v1/widget/alerts/"+id, nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}

	_, resp = do(t, router, httptest.NewRequest(http.MethodGet, "/api/v1/widget", nil))
	if len(resp.Alerts) != 0 {
		t.Fatalf("expected alerts cleared, got %v", resp.Alerts)
	}
}
