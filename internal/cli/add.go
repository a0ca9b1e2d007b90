package cli

import (
	"flag"
	"time"

	"github.com/lgalvis/horario/internal/models"
)

func (app *App) runAdd(args []string) error {
	flags := flag.NewFlagSet("add", flag.ContinueOnError)
	user := flags.String("user", "", "acting username")
	person := flags.String("person", "", "person the record belongs to (defaults to the acting user)")
	date := flags.String("date", time.Now().UTC().Format(dateLayout), "record date, YYYY-MM-DD")
	activity := flags.String("activity", "", "activity label")
	project := flags.String("project", "", "project name")
	hours := flags.Float64("hours", 0, "hours spent, must be > 0")
	if err := flags.Parse(args); err != nil {
		return err
	}

	session, err := app.login(*user)
	if err != nil {
		return err
	}
	defer app.auth.Logout()

	recordDate, err := parseDate(*date)
	if err != nil {
		return err
	}

	target := *person
	if target == "" {
		target = session.Username
	}

	record := models.ActivityRecord{
		Date:     recordDate,
		Person:   target,
		Activity: *activity,
		Project:  *project,
		Hours:    *hours,
	}
	if err := app.activities.Submit(session, record); err != nil {
		return err
	}

	app.log.Info().
		Str("person", target).
		Str("project", record.Project).
		Float64("hours", record.Hours).
		Msg("activity recorded")
	return nil
}
