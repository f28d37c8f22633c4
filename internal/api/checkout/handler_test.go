package checkout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntifurbi-backend/config"
	"puntifurbi-backend/internal/domain/pricing"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(pricing.Default())
	r := gin.New()
	r.POST("/checkout/create-session", h.CreateSession)
	r.GET("/checkout/session-status", h.SessionStatus)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateSessionValidation(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"unknown plan", map[string]string{"plan": "platinum", "billing": "monthly"}},
		{"unknown interval", map[string]string{"plan": "premium", "billing": "weekly"}},
		{"missing billing", map[string]string{"plan": "premium"}},
		{"missing plan", map[string]string{"billing": "monthly"}},
		{"empty body", map[string]string{}},
		{"unknown price id", map[string]string{"price_id": "price_nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(r, "/checkout/create-session", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCreateSessionUnconfiguredStripe(t *testing.T) {
	config.STRIPE_SECRET_KEY = ""
	r := newRouter()

	// A fully valid request still degrades to a 500 when the credential is
	// absent; validation runs first so bad input is never blamed on config.
	rr := postJSON(r, "/checkout/create-session", map[string]string{"plan": "elite", "billing": "yearly"})
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Stripe is not configured", body["error"])
}

func TestCreateSessionAcceptsPriceID(t *testing.T) {
	config.STRIPE_SECRET_KEY = ""
	r := newRouter()

	// A known price_id passes validation and reaches the (unconfigured)
	// Stripe stage, proving the reverse lookup resolved it.
	rr := postJSON(r, "/checkout/create-session", map[string]string{"price_id": "price_Elite_Monthly_1990"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = postJSON(r, "/checkout/create-session", map[string]string{"price_id": "price_bogus"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionStatusRequiresSessionID(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/checkout/session-status", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionStatusUnconfiguredStripe(t *testing.T) {
	config.STRIPE_SECRET_KEY = ""
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/checkout/session-status?session_id=cs_test_123", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
