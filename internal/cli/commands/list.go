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

// EntryView — запись хранилища в ответе сервера.
type EntryView struct {
	ID       string `json:"id"`
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List vault entries of the active account" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	store := fsrepo.SessionFSStore{}
	email, err := store.LoadEmail()
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/vault/" + email
	resp, body, err := api.Get(endpoint)
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

	var entries []EntryView
	if err := json.Unmarshal(body, &entries); err != nil {
		return fmt.Errorf("malformed server response: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(Out, "Vault is empty")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(Out, "%s  %s  %s  %s\n", e.ID, e.Website, e.Username, e.Password)
	}
	return nil
}

func init() { RegisterCmd(listCmd{}) }
