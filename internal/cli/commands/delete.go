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

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a vault entry by id" }
func (deleteCmd) Usage() string       { return "delete <entry-id>" }

func (deleteCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/vault/" + args[0]
	resp, body, err := api.Delete(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Entry deleted")
		return nil
	case http.StatusNotFound:
		return errors.New("entry not found")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(deleteCmd{}) }
