package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookify/internal/auth"
	"github.com/snnyvrz/bookify/internal/catalog"
	"github.com/snnyvrz/bookify/internal/repository"
	"gorm.io/gorm"
)

const (
	testAdminUser = "admin"
	testAdminPass = "hunter2"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

type testEnv struct {
	router *gin.Engine
	tokens *auth.TokenManager
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouterWithRepos(books repository.BookRepository, carousels repository.CarouselRepository, pinger Pinger) testEnv {
	return setupRouterWithLogger(books, carousels, pinger, discardLogger())
}

func setupRouterWithLogger(books repository.BookRepository, carousels repository.CarouselRepository, pinger Pinger, logger *slog.Logger) testEnv {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	r := NewRouter(RouterDeps{
		Logger:    logger,
		Books:     catalog.NewService(books, logger, catalog.Options{}),
		Carousel:  catalog.NewCarouselService(carousels, logger),
		Verifier:  auth.NewStaticCredentials(testAdminUser, testAdminPass),
		Tokens:    tokens,
		Cookies:   auth.Cookies{},
		Store:     pinger,
		StartTime: time.Now(),
		Version:   "test",
	})

	return testEnv{router: r, tokens: tokens}
}

func setupTestRouter(db *gorm.DB) testEnv {
	return setupRouterWithRepos(
		repository.NewGormBookRepository(db),
		repository.NewGormCarouselRepository(db),
		fakePinger{},
	)
}

func (env testEnv) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()

	token, err := env.tokens.Issue(auth.Identity{Username: testAdminUser})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (env testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env testEnv) get(path string) *httptest.ResponseRecorder {
	return env.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// authed sends a JSON request carrying a valid session cookie.
func (env testEnv) authed(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.AddCookie(env.sessionCookie(t))
	return env.do(req)
}

func (env testEnv) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return env.do(req)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}

func validBookRequest() BookRequest {
	return BookRequest{
		Title:         "Noli Me Tangere",
		Author:        "Jose Rizal, Someone Else ,Third",
		Rating:        9.5,
		Genre:         "Historical Fiction",
		City:          "Berlin",
		Country:       "Germany",
		YearPublished: 1887,
		Languages:     "Spanish",
		BookPage:      438,
		Description:   "A novel of colonial society",
		BuyLink:       "https://example.com/noli",
		PosterImages:  "https://img.example.com/noli.jpg",
	}
}
