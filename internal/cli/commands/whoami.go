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

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the active account" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	store := fsrepo.SessionFSStore{}
	email, err := store.LoadEmail()
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/userinfo"
	resp, body, err := api.PostJSON(endpoint, map[string]string{"email": email})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return errors.New("account not found on server")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var out struct {
		FullName string `json:"fullName"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("malformed server response: %w", err)
	}
	fmt.Fprintf(Out, "%s <%s>\n", out.FullName, email)
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
