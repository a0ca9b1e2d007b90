package cli

import (
	"flag"
	"fmt"
)

func (app *App) runProjects(args []string) error {
	flags := flag.NewFlagSet("projects", flag.ContinueOnError)
	user := flags.String("user", "", "acting username (required for add/remove)")
	add := flags.String("add", "", "project name to register")
	remove := flags.String("remove", "", "project name to remove")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *add == "" && *remove == "" {
		projects, err := app.projects.List()
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		for _, project := range projects {
			fmt.Fprintln(app.stdout, project.Name)
		}
		return nil
	}

	session, err := app.login(*user)
	if err != nil {
		return err
	}
	defer app.auth.Logout()

	if *add != "" {
		if err := app.projects.Add(session, *add); err != nil {
			return err
		}
		app.log.Info().Str("project", *add).Msg("project registered")
	}
	if *remove != "" {
		if err := app.projects.Remove(session, *remove); err != nil {
			return err
		}
		app.log.Info().Str("project", *remove).Msg("project removed")
	}
	return nil
}
