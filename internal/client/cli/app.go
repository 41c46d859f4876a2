package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type App struct {
	serverAddr string
	client     *http.Client
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(serverAddr string) *App {
	return &App{
		serverAddr: serverAddr,
		client:     &http.Client{Timeout: 10 * time.Second},
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *App) promptCredentials() (*credentials, error) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return nil, err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return nil, err
	}
	return &credentials{Email: email, Password: string(password)}, nil
}

func (a *App) postJSON(ctx context.Context, path string, body any) (*http.Response, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.serverAddr+path, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, raw, nil
}

// Register prompts for credentials and creates a user on the server.
func (a *App) Register(ctx context.Context) error {
	creds, err := a.promptCredentials()
	if err != nil {
		return err
	}

	resp, raw, err := a.postJSON(ctx, "/api/auth/register", creds)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed: %s", string(raw))
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and prints the bearer token on success.
func (a *App) Login(ctx context.Context) error {
	creds, err := a.promptCredentials()
	if err != nil {
		return err
	}

	resp, raw, err := a.postJSON(ctx, "/api/auth/login", creds)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: %s", string(raw))
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}

	fmt.Fprintln(a.out, out.Token)
	return nil
}
