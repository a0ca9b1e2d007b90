package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/lgalvis/horario/internal/security"
	"github.com/lgalvis/horario/internal/services"
)

const temporaryPasswordLength = 12

// runBootstrap creates the first admin account. Refuses to run once the
// registry is populated; later admins go through register -admin.
func (app *App) runBootstrap(args []string) error {
	flags := flag.NewFlagSet("bootstrap", flag.ContinueOnError)
	username := flags.String("username", "admin", "username for the first admin")
	displayName := flags.String("display-name", "", "optional display name")
	if err := flags.Parse(args); err != nil {
		return err
	}

	count, err := app.repos.Users.CountUsers()
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return errors.New("registry already initialized; use register -admin instead")
	}

	password, err := app.promptPassword("Password (leave empty to generate): ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	generated := false
	if password == "" {
		password, err = security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		generated = true
	}

	user, err := app.credentials.Register(services.RegistrationInput{
		Username:    *username,
		Password:    password,
		Confirm:     password,
		DisplayName: *displayName,
		AsAdmin:     true,
	})
	if err != nil {
		return err
	}

	app.log.Info().Str("username", user.Username).Msg("admin account created")
	if generated {
		fmt.Fprintf(app.stdout, "Generated password for %s: %s\n", user.Username, password)
		fmt.Fprintln(app.stdout, "Store it now; it is not shown again.")
	}
	return nil
}
