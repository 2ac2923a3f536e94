// Package appwrite is a thin client for the hosted BaaS the fishlog app is
// built on: account/session management, a document database, and file
// storage, all behind one HTTP endpoint and project id.
//
// Every operation is a single network call. Failures are mapped onto the
// sentinel errors in errors.go and propagated unchanged to the caller; the
// adapter never retries.
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	headerProject = "X-Appwrite-Project"
	headerSession = "X-Appwrite-Session"
)

// Client holds the endpoint configuration and the current session secret.
// Sub-services (Account, Databases, Storage) share it.
type Client struct {
	endpoint string
	project  string
	session  string
	http     *http.Client
}

// New creates a Client for the given endpoint URL and project id.
func New(endpoint, project string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		project:  project,
		http: &http.Client{
			Timeout: 5 * time.Minute, // generous for avatar uploads
		},
	}
}

// SetSession installs a session secret; it is sent with every subsequent
// request. An empty secret clears it.
func (c *Client) SetSession(secret string) { c.session = secret }

// Session returns the current session secret, empty when anonymous.
func (c *Client) Session() string { return c.session }

// Account returns the account/session service.
func (c *Client) Account() *Account { return &Account{c: c} }

// Databases returns the document database service.
func (c *Client) Databases() *Databases { return &Databases{c: c} }

// Storage returns the file storage service.
func (c *Client) Storage() *Storage { return &Storage{c: c} }

// remoteError is the error envelope the service returns on non-2xx status.
type remoteError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerProject, c.project)
	if c.session != "" {
		req.Header.Set(headerSession, c.session)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// call sends a JSON request and decodes the JSON response into out (which
// may be nil for operations without a response body).
func (c *Client) call(ctx context.Context, method, path string, body any, out any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// upload sends a multipart file upload with the given file id and name.
func (c *Client) upload(ctx context.Context, path, fileID, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("fileId", fileID); err != nil {
		return err
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", req.Method, req.URL.Path, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %v: %w", err, ErrUnavailable)
	}

	if resp.StatusCode >= 400 {
		return c.mapError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// mapError translates a non-2xx response into a RequestError unwrapping to
// the matching sentinel.
func (c *Client) mapError(status int, body []byte) error {
	msg := http.StatusText(status)
	var re remoteError
	if json.Unmarshal(body, &re) == nil && re.Message != "" {
		msg = re.Message
	}

	var sentinel error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = ErrNotAuthenticated
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusBadRequest:
		sentinel = ErrValidation
	default:
		if status >= 500 {
			sentinel = ErrUnavailable
		} else {
			sentinel = ErrValidation
		}
	}
	return &RequestError{Status: status, Message: msg, sentinel: sentinel}
}
