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
	"passvault/internal/passgen"
)

// UpsertRequest — тело PUT /vault.
type UpsertRequest struct {
	Website   string `json:"website"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	UserEmail string `json:"userEmail"`
}

type saveCmd struct{}

func (saveCmd) Name() string        { return "save" }
func (saveCmd) Description() string { return "Insert or overwrite a vault entry (-g generates the password)" }
func (saveCmd) Usage() string       { return "save <website> <username> <password|-g>" }

func (saveCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	website, username, password := args[0], args[1], args[2]
	if website == "" || username == "" || password == "" {
		return ErrUsage
	}

	// пароль генерируется локально, сервер в этом не участвует
	if password == "-g" {
		generated, err := passgen.Default()
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		password = generated
		fmt.Fprintf(Out, "Generated password: %s\n", password)
	}

	store := fsrepo.SessionFSStore{}
	email, err := store.LoadEmail()
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/vault"
	req := UpsertRequest{Website: website, Username: username, Password: password, UserEmail: email}
	resp, body, err := api.PutJSON(endpoint, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		var entry EntryView
		if err := json.Unmarshal(body, &entry); err != nil {
			return fmt.Errorf("malformed server response: %w", err)
		}
		if resp.StatusCode == http.StatusCreated {
			fmt.Fprintf(Out, "Created entry %s\n", entry.ID)
		} else {
			fmt.Fprintf(Out, "Updated entry %s\n", entry.ID)
		}
		return nil
	case http.StatusNotFound:
		return errors.New("account not found on server")
	case http.StatusBadRequest:
		return errors.New("website, username and password are required")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(saveCmd{}) }
