package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"passvault/internal/cli/api"
	"passvault/internal/config"
)

type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupCmd struct{}

func (signupCmd) Name() string        { return "signup" }
func (signupCmd) Description() string { return "Register a new account" }
func (signupCmd) Usage() string       { return "signup <full-name> <email> <password>" }

func (signupCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/signup"
	req := SignupRequest{FullName: args[0], Email: args[1], Password: args[2]}
	resp, body, err := api.PostJSON(endpoint, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Fprintln(Out, "Account registered")
		return nil
	case http.StatusBadRequest:
		return errors.New("account already exists or fields are missing")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(signupCmd{}) }
