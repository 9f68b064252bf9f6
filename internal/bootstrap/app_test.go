package bootstrap

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-optimizer/internal/shared/config"
	"energy-optimizer/internal/shared/telemetry"
)

func buildTestApp(t *testing.T, seed *uint64) *App {
	t.Helper()
	prev := telemetry.SetOutput(io.Discard)
	t.Cleanup(func() {
		telemetry.SetOutput(prev)
		telemetry.SetDebug(false)
		gin.SetMode(gin.TestMode)
	})

	app, err := Build(config.Config{
		Port:            "8080",
		Env:             "dev",
		CORSAllowOrigin: []string{"*"},
		RandomSeed:      seed,
	})
	require.NoError(t, err)
	require.NotNil(t, app.Router)
	return app
}

func TestBuildServesEndpoints(t *testing.T) {
	app := buildTestApp(t, nil)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Energy Optimizer API is running", resp.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"building_type":"commercial"}`))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"building_type":"commercial"`)
}

func TestBuildWithSeedIsReproducible(t *testing.T) {
	seed := uint64(11)
	first := buildTestApp(t, &seed)
	second := buildTestApp(t, &seed)

	for i := 0; i < 5; i++ {
		a, err := first.Engine.Recommend("residential")
		require.NoError(t, err)
		b, err := second.Engine.Recommend("residential")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestBuildRejectsInvalidOrigin(t *testing.T) {
	_, err := Build(config.Config{CORSAllowOrigin: []string{"localhost:5173"}})
	assert.Error(t, err)
}
