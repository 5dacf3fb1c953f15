package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/domain"
)

// TokenSource supplies the current session, when one exists. Injected rather
// than read from a global store so the client stays testable.
type TokenSource interface {
	Session() (domain.Session, bool)
}

// LocaleSource supplies the language sent as Accept-Language.
type LocaleSource interface {
	Language() string
}

// Client issues typed requests against the storefront backend. Every request
// is fire-once: a call either fully succeeds or fails with an extracted
// human-readable message; there is no retry.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	locale  LocaleSource
	logger  *log.Logger
	now     func() time.Time
}

// New builds a Client. tokens and locale may be nil for unauthenticated use.
func New(baseURL string, httpClient *http.Client, tokens TokenSource, locale LocaleSource, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		locale:  locale,
		logger:  logger,
		now:     time.Now,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// postMultipart uploads a single file field plus form values. Used by the
// image search endpoint.
func (c *Client) postMultipart(ctx context.Context, path, field, filename string, file io.Reader, values url.Values, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	for key, vals := range values {
		for _, v := range vals {
			if err := w.WriteField(key, v); err != nil {
				return fmt.Errorf("write field %q: %w", key, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-Type", "mobile")
	lang := "en"
	if c.locale != nil {
		if l := strings.TrimSpace(c.locale.Language()); l != "" {
			lang = l
		}
	}
	req.Header.Set("Accept-Language", lang)

	if c.tokens != nil {
		if sess, ok := c.tokens.Session(); ok {
			// Expiry is checked lazily here, not on a timer, and only for
			// the refresh token.
			if sess.Expired(c.now()) {
				return nil, domain.ErrSessionExpired
			}
			if sess.Token != "" {
				req.Header.Set("Authorization", "Bearer "+sess.Token)
			}
		}
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Printf("%s %s -> %d", req.Method, req.URL.Path, resp.StatusCode)
		return newError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
