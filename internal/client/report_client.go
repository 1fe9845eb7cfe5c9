// Package client talks to the report server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"certidao-widget/internal/domain"
	apperrors "certidao-widget/pkg/errors"
)

// UploadPath is the fixed report server endpoint for submissions.
const UploadPath = "/upload"

// FormField is the multipart field carrying the file.
const FormField = "file"

// ReportClient uploads certificates to the report server
type ReportClient struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

// NewReportClient creates a client for the server at baseURL. A nil
// httpClient uses a client without timeout: an in-flight upload runs until
// the transport reports an outcome or ctx is done.
func NewReportClient(baseURL string, httpClient *http.Client, logger domain.Logger) *ReportClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ReportClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Upload posts file as multipart form data and decodes the report.
//
// Errors are *errors.AppError: ErrorTypeServer for non-2xx JSON answers
// (Message holds the server text, possibly empty) and ErrorTypeNetwork when
// no usable JSON answer came back, whatever the status.
func (c *ReportClient) Upload(ctx context.Context, file *domain.SelectedFile) (*domain.UploadResult, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("file is required")
	}

	body, contentType, err := encodeForm(file)
	if err != nil {
		return nil, apperrors.NewProcessingError("failed to read selected file", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+UploadPath, body)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build upload request", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Uploading file", "file", file.Name, "size", file.Size, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Upload request failed", err, "file", file.Name)
		return nil, apperrors.NewNetworkError("upload request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to read upload response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message, err := errorMessage(raw)
		if err != nil {
			// An HTML error page from the server or a proxy is no answer.
			c.logger.Error("Undecodable error response", err, "status", resp.StatusCode)
			return nil, apperrors.NewNetworkError("invalid error response", err)
		}
		c.logger.Warn("Report server rejected upload", "status", resp.StatusCode, "message", message)
		return nil, apperrors.NewServerError(resp.StatusCode, message)
	}

	var result domain.UploadResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.logger.Error("Undecodable upload response", err, "status", resp.StatusCode)
		return nil, apperrors.NewNetworkError("invalid upload response", err)
	}

	c.logger.Info("Report received", "file", file.Name, "report_file", result.ReportFile)
	return &result, nil
}

// errorMessage extracts the text of the "error" field of a failure body.
// The body must be JSON; a JSON object without a truthy "error" yields an
// empty message, anything that is not an object fails.
func errorMessage(raw []byte) (string, error) {
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", err
	}
	switch t := body.(type) {
	case map[string]any:
		return domain.FieldText(t["error"]), nil
	case nil:
		return "", fmt.Errorf("empty error response")
	default:
		return "", nil
	}
}

// encodeForm builds the multipart body. The part keeps the declared content
// type of the file, as a browser form submission does.
func encodeForm(file *domain.SelectedFile) (io.Reader, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	partType := file.Type
	if partType == "" {
		partType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FormField, escapeQuotes(file.Name)))
	h.Set("Content-Type", partType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
