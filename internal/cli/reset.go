package cli

import (
	"flag"
	"fmt"

	"github.com/lgalvis/horario/internal/security"
)

// runResetPassword sets a fresh temporary password for a user. Operator
// command: it works against the store directly, no login required.
func (app *App) runResetPassword(args []string) error {
	flags := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	username := flags.String("username", "", "user whose password to reset")
	if err := flags.Parse(args); err != nil {
		return err
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	if err := app.credentials.UpdatePassword(*username, temporaryPassword); err != nil {
		return err
	}

	app.log.Info().Str("username", *username).Msg("password reset")
	fmt.Fprintf(app.stdout, "Temporary password for %s: %s\n", *username, temporaryPassword)
	return nil
}
