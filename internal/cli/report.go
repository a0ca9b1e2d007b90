package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lgalvis/horario/internal/services"
)

func (app *App) runReport(args []string) error {
	flags := flag.NewFlagSet("report", flag.ContinueOnError)
	user := flags.String("user", "", "acting username (must be an admin)")
	start := flags.String("start", "", "range start, YYYY-MM-DD")
	end := flags.String("end", "", "range end, YYYY-MM-DD")
	persons := flags.String("persons", "", "comma-separated person list (defaults to every person in the dataset)")
	title := flags.String("title", "", "report title")
	out := flags.String("out", "", "write the JSON payload to this file instead of stdout")
	if err := flags.Parse(args); err != nil {
		return err
	}

	session, err := app.login(*user)
	if err != nil {
		return err
	}
	defer app.auth.Logout()

	startDate, err := parseDate(*start)
	if err != nil {
		return err
	}
	endDate, err := parseDate(*end)
	if err != nil {
		return err
	}

	requested := splitPersons(*persons)
	if len(requested) == 0 {
		all, err := app.repos.Activities.Persons()
		if err != nil {
			return fmt.Errorf("list persons: %w", err)
		}
		requested = services.VisiblePersons(session, all)
	}

	payload, err := app.reports.Generate(session, services.ReportRequest{
		Title:   *title,
		Start:   startDate,
		End:     endDate,
		Persons: requested,
	})
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	encoded = append(encoded, '\n')

	if *out != "" {
		if err := os.WriteFile(*out, encoded, 0o644); err != nil {
			return fmt.Errorf("write payload: %w", err)
		}
		app.log.Info().Str("file", *out).Str("report_id", payload.ID).Msg("report written")
		return nil
	}

	if _, err := app.stdout.Write(encoded); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}
