package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lgalvis/horario/internal/calendar"
	"github.com/lgalvis/horario/internal/db"
	"github.com/lgalvis/horario/internal/services"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

var errUnknownCommand = errors.New("unknown command")

// App bundles the wired services behind the admin command surface.
type App struct {
	repos       *db.Repositories
	credentials *services.CredentialService
	auth        *services.Authenticator
	activities  *services.ActivityService
	projects    *services.ProjectService
	reports     *services.ReportService
	log         zerolog.Logger
	stdin       *os.File
	stdout      io.Writer
}

func NewApp(repos *db.Repositories, oracle *calendar.Oracle, log zerolog.Logger) (*App, error) {
	credentials, err := services.NewCredentialService(repos.Users)
	if err != nil {
		return nil, fmt.Errorf("init credential service: %w", err)
	}

	return &App{
		repos:       repos,
		credentials: credentials,
		auth:        services.NewAuthenticator(credentials),
		activities:  services.NewActivityService(repos.Activities),
		projects:    services.NewProjectService(repos.Projects),
		reports:     services.NewReportService(repos.Activities, oracle),
		log:         log,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
	}, nil
}

func (app *App) Run(args []string) error {
	if len(args) == 0 {
		app.printUsage()
		return errUnknownCommand
	}

	switch args[0] {
	case "bootstrap":
		return app.runBootstrap(args[1:])
	case "register":
		return app.runRegister(args[1:])
	case "reset-password":
		return app.runResetPassword(args[1:])
	case "users":
		return app.runUsers(args[1:])
	case "add":
		return app.runAdd(args[1:])
	case "projects":
		return app.runProjects(args[1:])
	case "report":
		return app.runReport(args[1:])
	default:
		app.printUsage()
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}
}

func (app *App) printUsage() {
	fmt.Fprintln(os.Stderr, `usage: horario <command> [flags]

commands:
  bootstrap       create the first admin account
  register        register a new account
  reset-password  reset a user's password to a temporary one
  users           list registered users
  add             submit an activity record
  projects        list or manage the project registry
  report          generate a report payload as JSON`)
}

// login authenticates the acting user for policy-gated commands.
func (app *App) login(username string) (services.Session, error) {
	if username == "" {
		return services.Session{}, errors.New("-user is required")
	}

	password, err := app.promptPassword(fmt.Sprintf("Password for %s: ", username))
	if err != nil {
		return services.Session{}, fmt.Errorf("read password: %w", err)
	}

	session, err := app.auth.Login(username, password)
	if err != nil {
		return services.Session{}, err
	}
	return session, nil
}

func (app *App) promptPassword(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	value, err := readPasswordNoEcho(app.stdin)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return parsed, nil
}

func splitPersons(value string) []string {
	parts := strings.Split(value, ",")
	persons := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			persons = append(persons, trimmed)
		}
	}
	return persons
}
