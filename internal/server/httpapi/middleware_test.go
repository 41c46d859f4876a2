package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/svcadmin/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth_NoHeader(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"message":"unauthorized"}`, string(raw))
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/users", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Basic abc")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/users", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	ts, _ := newTestServer(t)

	// signed with the right secret but already expired
	token, err := auth.GenerateToken("u-1", []byte("test-secret"), 0)
	require.NoError(t, err)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/users", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ForeignSecret(t *testing.T) {
	ts, _ := newTestServer(t)

	token, err := auth.GenerateToken("u-1", []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/users", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	ts, _ := newTestServer(t)
	register(t, ts, "admin@x.com", "secret123")
	token := login(t, ts, "admin@x.com", "secret123")

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/users", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
