package handling

import (
	"errors"
	"kube_probe_api/config"
	"kube_probe_api/lib"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenPipe = errors.New("write: broken pipe")

// flakyWriter fails the first body write only.
type flakyWriter struct {
	*httptest.ResponseRecorder
	failed bool
}

func (f *flakyWriter) Write(b []byte) (int, error) {
	if !f.failed {
		f.failed = true
		return 0, errBrokenPipe
	}
	return f.ResponseRecorder.Write(b)
}

func testLogger(t *testing.T) *gecho.Logger {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	return config.NewLogger(config.Load(), false)
}

func TestHandleErrorEncodeFailure(t *testing.T) {
	logger := testLogger(t)
	handler := gecho.Handlers.CreateLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := lib.WriteJSON(w, http.StatusOK, make(chan int)); err != nil {
			HandleError(err, "Failed to encode response", logger, w)
		}
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to encode response")
}

func TestHandleErrorAfterResponseStarted(t *testing.T) {
	logger := testLogger(t)
	handler := gecho.Handlers.CreateLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := lib.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		require.ErrorIs(t, err, lib.ErrResponseStarted)
		require.ErrorIs(t, err, errBrokenPipe)
		HandleError(err, "late failure", logger, w)
	}))

	fw := &flakyWriter{ResponseRecorder: httptest.NewRecorder()}
	handler.ServeHTTP(fw, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, fw.Code)
	assert.Empty(t, fw.Body.String(), "no error body is appended to a started response")
}
