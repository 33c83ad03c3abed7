package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pageshell/internal/app"
	"github.com/alexisbeaulieu97/pageshell/internal/logger"
	"github.com/alexisbeaulieu97/pageshell/internal/sections"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDocumentRoute(t *testing.T) {
	t.Parallel()

	srv := New(Options{App: app.Options{Title: "Home"}})
	rec := get(t, srv.Handler(), PathDocument)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Home</title>")
	assert.Contains(t, body, `<link rel="stylesheet" href="/styles.css"/>`)
	assert.Contains(t, body, ">"+sections.DefaultPlaceholder+"<")
}

func TestDocumentRouteInlineStyles(t *testing.T) {
	t.Parallel()

	rec := get(t, New(Options{}).Handler(), PathDocument+"?inline=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<style>")
	assert.NotContains(t, rec.Body.String(), `rel="stylesheet"`)
}

func TestStylesheetMatchesDocumentClasses(t *testing.T) {
	t.Parallel()

	h := New(Options{}).Handler()
	css := get(t, h, PathStylesheet)
	require.Equal(t, http.StatusOK, css.Code)
	assert.Equal(t, "text/css; charset=utf-8", css.Header().Get("Content-Type"))

	doc := app.New(app.Options{}).Document()
	for _, class := range doc.Sheet.Classes() {
		assert.Contains(t, css.Body.String(), "."+class+" {")
	}
	assert.Contains(t, css.Body.String(), "box-sizing: border-box;")
}

func TestHealthRoute(t *testing.T) {
	t.Parallel()

	rec := get(t, New(Options{}).Handler(), PathHealth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	rec := get(t, New(Options{}).Handler(), "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestsAreLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "info", Format: logger.FormatJSON, Writer: &buf})
	require.NoError(t, err)

	get(t, New(Options{Logger: log}).Handler(), PathHealth)

	out := buf.String()
	assert.Contains(t, out, `"message":"request"`)
	assert.Contains(t, out, `"path":"/healthz"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id":"`)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(Options{}).Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + PathHealth
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunReportsListenError(t *testing.T) {
	t.Parallel()

	err := New(Options{Addr: "256.0.0.1:bad"}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
