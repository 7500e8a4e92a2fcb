package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"passvault/internal/cli/api"
	fsrepo "passvault/internal/cli/repo/fs"
	"passvault/internal/config"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and remember the active account" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/login"
	req := LoginRequest{Email: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(endpoint, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		// сервер токенов не выдаёт — запоминаем email из ответа и дальше
		// передаём его сами
		var out struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(body, &out); err != nil || out.Email == "" {
			return errors.New("malformed login response")
		}
		store := fsrepo.SessionFSStore{}
		if err := store.SaveEmail(out.Email); err != nil {
			return fmt.Errorf("saving active account: %w", err)
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid email or password")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(loginCmd{}) }
