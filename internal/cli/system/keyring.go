package system

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/keyring"
)

type KeySetCmd struct{}

func (c *KeySetCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return errors.New("no system keyring available, set OPENAI_API_KEY instead")
	}

	fmt.Print("OpenAI API key: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	key := string(raw)
	if key == "" {
		return errors.New("API key must not be empty")
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}
	fmt.Println("✓ API key stored in system keyring")
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("✓ API key removed from system keyring")
	return nil
}

type KeyStatusCmd struct{}

func (c *KeyStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("Keyring: unavailable (OPENAI_API_KEY environment variable is used instead)")
		return nil
	}

	_, err := keyring.GetAPIKey()
	switch {
	case err == nil:
		fmt.Println("Keyring: available, API key stored")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("Keyring: available, no API key stored")
	default:
		return err
	}
	return nil
}
