package commands

import (
	"context"
	"fmt"
	"strconv"

	"passvault/internal/config"
	"passvault/internal/passgen"
)

type generateCmd struct{}

func (generateCmd) Name() string        { return "generate" }
func (generateCmd) Description() string { return "Generate a random password locally" }
func (generateCmd) Usage() string       { return "generate [length]" }

func (generateCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	length := passgen.DefaultLength
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return ErrUsage
		}
		length = n
	}
	password, err := passgen.Generate(length)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, password)
	return nil
}

func init() { RegisterCmd(generateCmd{}) }
