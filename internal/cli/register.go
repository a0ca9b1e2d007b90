package cli

import (
	"flag"
	"fmt"

	"github.com/lgalvis/horario/internal/services"
)

func (app *App) runRegister(args []string) error {
	flags := flag.NewFlagSet("register", flag.ContinueOnError)
	username := flags.String("username", "", "username for the new account")
	displayName := flags.String("display-name", "", "optional display name")
	asAdmin := flags.Bool("admin", false, "grant the admin role")
	if err := flags.Parse(args); err != nil {
		return err
	}

	password, err := app.promptPassword("Password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	confirm, err := app.promptPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}

	user, err := app.credentials.Register(services.RegistrationInput{
		Username:    *username,
		Password:    password,
		Confirm:     confirm,
		DisplayName: *displayName,
		AsAdmin:     *asAdmin,
	})
	if err != nil {
		return err
	}

	app.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("account registered")
	return nil
}

func (app *App) runUsers(args []string) error {
	flags := flag.NewFlagSet("users", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	users, err := app.credentials.List()
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		fmt.Fprintf(app.stdout, "%s\t%s\t%s\n", user.Username, user.Role, user.Label())
	}
	return nil
}
