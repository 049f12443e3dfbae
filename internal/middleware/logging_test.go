// internal/middleware/logging_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()

	h := LogMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/game/list", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, "http request", entry.Message)
	assert.Equal(t, "GET", entry.Data["method"])
	assert.Equal(t, "/game/list", entry.Data["path"])
	assert.Contains(t, entry.Data, "duration")
}

func TestLogWebSocketConnectCarriesGameID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	gameID := uuid.New()

	LogWebSocketConnect(logger, "1.2.3.4:5678", "/game/ws/"+gameID.String(), gameID)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, gameID, hook.LastEntry().Data["gameId"])

	LogWebSocketDisconnect(logger, "1.2.3.4:5678", "/game/ws/"+gameID.String(), gameID, assert.AnError)
	entry := hook.LastEntry()
	assert.Equal(t, gameID, entry.Data["gameId"])
	assert.Equal(t, assert.AnError, entry.Data["error"])
}
