package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		return []byte(pw), nil
	}
}

func newTestApp(serverURL, email string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	app := NewApp(serverURL)
	app.reader = bufio.NewReader(strings.NewReader(email + "\n"))
	app.out = out
	return app, out
}

func TestRegister_Success(t *testing.T) {
	stubPassword(t, "secret123")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var creds credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@x.com", creds.Email)
		assert.Equal(t, "secret123", creds.Password)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"user created"}`))
	}))
	defer ts.Close()

	app, out := newTestApp(ts.URL, "a@x.com")
	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, out.String(), "Success!")
}

func TestRegister_ServerFailure(t *testing.T) {
	stubPassword(t, "secret123")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
	}))
	defer ts.Close()

	app, _ := newTestApp(ts.URL, "a@x.com")
	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registration failed")
}

func TestLogin_PrintsToken(t *testing.T) {
	stubPassword(t, "secret123")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"token":"abc.def.ghi"}`))
	}))
	defer ts.Close()

	app, out := newTestApp(ts.URL, "a@x.com")
	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "abc.def.ghi")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	stubPassword(t, "wrong")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer ts.Close()

	app, _ := newTestApp(ts.URL, "a@x.com")
	err := app.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}
