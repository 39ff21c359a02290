// internal/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"womenrisehub/internal/common/config"
	apperrors "womenrisehub/internal/common/errors"
	commonhttp "womenrisehub/internal/common/http"
	"womenrisehub/internal/common/logger"
	"womenrisehub/internal/common/metrics"
	"womenrisehub/internal/models"
)

// Client talks to the remote WomenRiseHub gateway. All methods are safe to
// call when no endpoint is configured; they return TRANSPORT_FAILED-class
// errors the store turns into local fallbacks.
type Client struct {
	baseURL string
	http    *commonhttp.Client
	session Session
	log     logger.Logger
	tracer  trace.Tracer
}

func New(cfg config.APIConfig, session Session, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    commonhttp.NewClient(cfg.RequestTimeout()),
		session: session,
		log:     log.WithFields(map[string]interface{}{"component": "gateway"}),
		tracer:  otel.Tracer("womenrisehub/gateway"),
	}
}

// Configured reports whether a remote endpoint is present at all.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// ListProjects fetches the full project collection.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	body, err := c.do(ctx, http.MethodGet, "list_projects", "/projects", nil, false)
	if err != nil {
		return nil, err
	}
	return decodeProjects(body)
}

// CreateProject submits a project draft and returns the server's record.
func (c *Client) CreateProject(ctx context.Context, draft models.Project) (models.Project, error) {
	body, err := c.do(ctx, http.MethodPost, "create_project", "/create/project", encodeProjectDraft(draft), true)
	if err != nil {
		return models.Project{}, err
	}
	return decodeProject(body)
}

// ListApplications fetches one project's applications.
func (c *Client) ListApplications(ctx context.Context, projectID string) ([]models.Application, error) {
	path := fmt.Sprintf("/projects/%s/applications", url.PathEscape(projectID))
	body, err := c.do(ctx, http.MethodGet, "list_applications", path, nil, false)
	if err != nil {
		return nil, err
	}
	return decodeApplications(body)
}

// ListVolunteers fetches one project's volunteer roster.
func (c *Client) ListVolunteers(ctx context.Context, projectID string) ([]models.Volunteer, error) {
	path := fmt.Sprintf("/projects/%s/volunteers", url.PathEscape(projectID))
	body, err := c.do(ctx, http.MethodGet, "list_volunteers", path, nil, false)
	if err != nil {
		return nil, err
	}
	return decodeVolunteers(body)
}

// Apply submits an application draft scoped to a project.
func (c *Client) Apply(ctx context.Context, projectID string, draft models.Application) (models.Application, error) {
	path := fmt.Sprintf("/projects/%s/apply", url.PathEscape(projectID))
	body, err := c.do(ctx, http.MethodPost, "apply", path, encodeApplicationDraft(draft), true)
	if err != nil {
		return models.Application{}, err
	}
	return decodeApplication(body)
}

// UpdateApplicationStatus pushes a status transition to the gateway. The
// backend has shipped this endpoint under several shapes over time, so each
// is tried in a fixed order and the first success wins.
func (c *Client) UpdateApplicationStatus(ctx context.Context, projectID, applicationID string, status models.ApplicationStatus) error {
	pid := url.PathEscape(projectID)
	aid := url.PathEscape(applicationID)
	attempts := []struct {
		method string
		path   string
	}{
		{http.MethodPatch, fmt.Sprintf("/projects/%s/applications/%s/status", pid, aid)},
		{http.MethodPatch, fmt.Sprintf("/applications/%s/status", aid)},
		{http.MethodPost, fmt.Sprintf("/projects/%s/applications/%s/status", pid, aid)},
		{http.MethodPost, fmt.Sprintf("/applications/%s/status", aid)},
	}

	payload := map[string]interface{}{"status": string(status)}
	var lastErr error
	for _, attempt := range attempts {
		_, err := c.do(ctx, attempt.method, "update_application_status", attempt.path, payload, true)
		if err == nil {
			return nil
		}
		lastErr = err
		// Transport failures won't heal by switching endpoint shapes.
		if apperrors.CodeOf(err) == apperrors.ErrCodeTransportFailed {
			break
		}
	}
	return lastErr
}

// UploadImage posts image bytes and returns the stored image URL, resolved
// against the gateway base when the backend answers with a relative path.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	const endpoint = "upload_image"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", apperrors.NewTransportError(endpoint, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", apperrors.NewTransportError(endpoint, err)
	}
	if err := writer.Close(); err != nil {
		return "", apperrors.NewTransportError(endpoint, err)
	}

	body, err := c.doRaw(ctx, http.MethodPost, endpoint, "/projects/upload-image", &buf, writer.FormDataContentType(), false)
	if err != nil {
		return "", err
	}
	stored, err := decodeUpload(body)
	if err != nil {
		return "", err
	}
	return c.resolveURL(stored), nil
}

func (c *Client) resolveURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	return c.baseURL + "/" + strings.TrimLeft(ref, "/")
}

func (c *Client) do(ctx context.Context, method, endpoint, path string, payload interface{}, authRequired bool) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, apperrors.NewTransportError(endpoint, err)
		}
		body = bytes.NewReader(jsonData)
	}
	return c.doRaw(ctx, method, endpoint, path, body, "application/json", authRequired)
}

func (c *Client) doRaw(ctx context.Context, method, endpoint, path string, body io.Reader, contentType string, authRequired bool) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "gateway."+endpoint,
		trace.WithAttributes(attribute.String("http.method", method), attribute.String("http.path", path)))
	defer span.End()

	scheme, token, hasCreds := c.session.Credentials()
	if authRequired && !hasCreds {
		err := apperrors.NewAuthMissingError(endpoint)
		span.SetStatus(codes.Error, err.Error())
		metrics.GatewayRequests.WithLabelValues(endpoint, "auth_missing").Inc()
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, apperrors.NewTransportError(endpoint, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if hasCreds {
		req.Header.Set("Authorization", scheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.GatewayRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, apperrors.NewTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.GatewayRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, apperrors.NewTransportError(endpoint, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, resp.Status)
		metrics.GatewayRequests.WithLabelValues(endpoint, "remote_status").Inc()
		c.log.Debug("gateway returned non-success status", map[string]interface{}{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		})
		return nil, apperrors.NewRemoteStatusError(endpoint, resp.StatusCode)
	}

	metrics.GatewayRequests.WithLabelValues(endpoint, "success").Inc()
	return respBody, nil
}
