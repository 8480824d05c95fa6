package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/common"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
	"github.com/google/uuid"
)

// DefaultTimeout bounds every request when no other timeout is configured.
const DefaultTimeout = 3 * time.Second

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithTransport replaces the underlying round tripper, keeping the timeout.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		c.http.Transport = rt
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		c.log = l
	}
}

// NewHTTPClient builds a client for the backend at baseURL
// (e.g. "http://192.168.1.107:3333"). A non-positive timeout means
// DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) CreateSession(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	if err := c.doJSON(ctx, http.MethodPost, "/sessions", models.Credentials{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	if !s.Complete() {
		return nil, &TransportError{
			Op:  "POST /sessions",
			Err: fmt.Errorf("%w: session without user or token", ErrMalformedResponse),
		}
	}
	return &s, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, user models.NewUser) error {
	return c.doJSON(ctx, http.MethodPost, "/users", user, nil)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, update models.ProfileUpdate) error {
	return c.doJSON(ctx, http.MethodPut, "/users", update, nil)
}

// UploadAvatar sends the photo as the multipart field "avatar" and returns
// the user as stored by the backend afterwards.
func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, photo io.Reader) (*models.User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	name := filepath.Base(filename)
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{"name": "avatar", "filename": name}))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create avatar part: %w", err)
	}
	if _, err := io.Copy(part, photo); err != nil {
		return nil, fmt.Errorf("read avatar: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close avatar form: %w", err)
	}

	var u models.User
	if err := c.send(ctx, http.MethodPatch, "/users/avatar", &buf, mw.FormDataContentType(), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListGroups(ctx context.Context) ([]string, error) {
	var groups []string
	if err := c.doJSON(ctx, http.MethodGet, "/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *HTTPClient) ListExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := c.doJSON(ctx, http.MethodGet, "/exercises/bygroup/"+url.PathEscape(group), nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *HTTPClient) GetExercise(ctx context.Context, id models.ID) (*models.Exercise, error) {
	var e models.Exercise
	if err := c.doJSON(ctx, http.MethodGet, "/exercises/"+url.PathEscape(id.String()), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) RecordHistory(ctx context.Context, exerciseID models.ID) error {
	return c.doJSON(ctx, http.MethodPost, "/history", models.HistoryEntry{ExerciseID: exerciseID}, nil)
}

func (c *HTTPClient) ListHistory(ctx context.Context) ([]models.HistoryByDay, error) {
	var days []models.HistoryByDay
	if err := c.doJSON(ctx, http.MethodGet, "/history", nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *HTTPClient) AssetURL(kind AssetKind, name string) string {
	return c.baseURL + "/" + string(kind) + "/" + url.PathEscape(name)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var (
		body        io.Reader
		contentType string
	)
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, body, contentType, out)
}

// send performs one request and turns every outcome into nil, *AppError or
// *TransportError.
func (c *HTTPClient) send(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	op := method + " " + path

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	token, authorized := AccessTokenFrom(ctx)
	if authorized {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "op", op, "request_id", requestID, "error", err)
		if errors.Is(err, context.Canceled) {
			return &TransportError{Op: op, Err: err}
		}
		return &TransportError{Op: op, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request",
		"op", op,
		"status", resp.StatusCode,
		"authorized", authorized,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(op, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
	}
	return nil
}

func decodeError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && strings.TrimSpace(body.Message) != "" {
		return &AppError{StatusCode: resp.StatusCode, Message: body.Message}
	}

	err := fmt.Errorf("unexpected status %d", resp.StatusCode)
	if resp.StatusCode == http.StatusUnauthorized {
		err = fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return &TransportError{Op: op, Err: err}
}
