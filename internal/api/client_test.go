package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain"
)

type stubTokens struct {
	session domain.Session
	ok      bool
}

func (s stubTokens) Session() (domain.Session, bool) { return s.session, s.ok }

type stubLocale struct{ lang string }

func (s stubLocale) Language() string { return s.lang }

func TestRequestCarriesStandardHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CategoryPage{})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), stubTokens{session: domain.Session{Token: "tok"}, ok: true}, stubLocale{lang: "ar"}, nil)
	if _, err := c.Categories(context.Background(), 2, 10); err != nil {
		t.Fatalf("categories: %v", err)
	}

	if h := got.Header.Get("Authorization"); h != "Bearer tok" {
		t.Fatalf("authorization: %q", h)
	}
	if h := got.Header.Get("X-Client-Type"); h != "mobile" {
		t.Fatalf("client type: %q", h)
	}
	if h := got.Header.Get("Accept-Language"); h != "ar" {
		t.Fatalf("language: %q", h)
	}
	if h := got.Header.Get("Accept"); h != "application/json" {
		t.Fatalf("accept: %q", h)
	}
	q := got.URL.Query()
	if q.Get("page") != "2" || q.Get("pageSize") != "10" {
		t.Fatalf("pagination query: %v", q)
	}
}

func TestLanguageDefaultsToEnglish(t *testing.T) {
	var lang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang = r.Header.Get("Accept-Language")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), nil, nil, nil)
	if _, err := c.Products(context.Background(), 1, 10); err != nil {
		t.Fatalf("products: %v", err)
	}
	if lang != "en" {
		t.Fatalf("default language: %q", lang)
	}
}

func TestExpiredSessionFailsBeforeTheWire(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), stubTokens{
		session: domain.Session{Token: "tok", RefreshTokenExpiresOn: time.Now().Add(-time.Minute)},
		ok:      true,
	}, nil, nil)

	_, err := c.Cart(context.Background())
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected session expiry, got %v", err)
	}
	if hits != 0 {
		t.Fatalf("expired session still reached the backend")
	}
}

func TestZeroExpiryNeverExpires(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), stubTokens{session: domain.Session{Token: "tok"}, ok: true}, nil, nil)
	if _, err := c.Cart(context.Background()); err != nil {
		t.Fatalf("zero expiry treated as expired: %v", err)
	}
}

func TestErrorStatusProducesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), nil, nil, nil)
	_, err := c.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "x"})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Invalid credentials" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("credentials sentinel not attached")
	}
}

func TestMultipartImageSearchUploadsTheFile(t *testing.T) {
	var contentType, filename, payload string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		filename = header.Filename
		raw, _ := io.ReadAll(file)
		payload = string(raw)
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), nil, nil, nil)
	_, err := c.SearchByImage(context.Background(), "photo.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("search by image: %v", err)
	}

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		t.Fatalf("content type: %q", contentType)
	}
	if filename != "photo.jpg" || payload != "fake image bytes" {
		t.Fatalf("upload mangled: name=%q payload=%q", filename, payload)
	}
}
