package gin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	nxgin "github.com/fwojciec/nxask/gin"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/health", "/healthz"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			nxgin.NewHealthHandler("test-service", "1.0.0").RegisterRoutes(router)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var response nxgin.HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, "healthy", response.Status)
			assert.Equal(t, "test-service", response.Service)
			assert.Equal(t, "1.0.0", response.Version)
			assert.False(t, response.Timestamp.IsZero())
		})
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	nxgin.NewHealthHandler("test-service", "1.0.0").RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
