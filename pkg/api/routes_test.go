package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestWelcomeRoute(t *testing.T) {
	router := NewRouter()

	w := serve(router, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to the Express API Server", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestWelcomeRouteIsStable(t *testing.T) {
	router := NewRouter()

	for i := 0; i < 20; i++ {
		w := serve(router, http.MethodGet, "/")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, WelcomeMessage, w.Body.String())
	}
}

func TestWelcomeRouteAnswersHead(t *testing.T) {
	w := serve(NewRouter(), http.MethodHead, "/")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnmatchedRoutesReturnNotFound(t *testing.T) {
	router := NewRouter()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/missing"},
		{http.MethodGet, "/api/v1"},
		{http.MethodPost, "/"},
		{http.MethodPut, "/"},
		{http.MethodDelete, "/"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(router, tc.method, tc.path)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "404 page not found", w.Body.String())
		})
	}
}

func TestRequestLoggerWritesAccessLine(t *testing.T) {
	logger := log.Logger
	t.Cleanup(func() { log.Logger = logger })
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	serve(NewRouter(), http.MethodGet, "/")
	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"level":"info"`)

	buf.Reset()
	serve(NewRouter(), http.MethodGet, "/nope")
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestRecoveryTurnsPanicsIntoServerErrors(t *testing.T) {
	router := NewRouter()
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(router, http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
