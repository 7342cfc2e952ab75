package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	rosterinadapter "courtside/internal/modules/roster/adapter/in"
	rosteroutadapter "courtside/internal/modules/roster/adapter/out"
	rosterdto "courtside/internal/modules/roster/dto"
	rosterusecase "courtside/internal/modules/roster/usecase"
	sessioninadapter "courtside/internal/modules/session/adapter/in"
	sessionoutadapter "courtside/internal/modules/session/adapter/out"
	sessiondto "courtside/internal/modules/session/dto"
	sessionservice "courtside/internal/modules/session/service"
	sessionusecase "courtside/internal/modules/session/usecase"
	subscriptioninadapter "courtside/internal/modules/subscription/adapter/in"
	subscriptionoutadapter "courtside/internal/modules/subscription/adapter/out"
	subscriptionservice "courtside/internal/modules/subscription/service"
	subscriptionusecase "courtside/internal/modules/subscription/usecase"
	templateinadapter "courtside/internal/modules/template/adapter/in"
	templateoutadapter "courtside/internal/modules/template/adapter/out"
	templateusecase "courtside/internal/modules/template/usecase"
	"courtside/internal/platform/clock"
	"courtside/internal/platform/config"
	apperrors "courtside/internal/platform/errors"
	"courtside/internal/platform/sqlite"
	"courtside/internal/platform/tx"
	uiapp "courtside/internal/ui/app"
)

type App struct {
	RosterCLI       rosterinadapter.CLIHandler
	SessionCLI      sessioninadapter.CLIHandler
	SubscriptionCLI subscriptioninadapter.CLIHandler
	TemplateCLI     templateinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	txm := tx.NoopManager{}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	userStore, err := rosteroutadapter.NewSQLiteUserStore(db)
	if err != nil {
		return nil, fmt.Errorf("new user store: %w", err)
	}
	rosterUC := rosterusecase.NewInteractor(clk, userStore)

	sessionStore, err := sessionoutadapter.NewSQLiteSessionStore(db)
	if err != nil {
		return nil, fmt.Errorf("new session store: %w", err)
	}
	contentStore, err := sessionoutadapter.NewSQLiteContentStore(db)
	if err != nil {
		return nil, fmt.Errorf("new content store: %w", err)
	}
	sessionSvc := sessionservice.NewSessionService(clk, sessionStore, contentStore)
	sessionUC := sessionusecase.NewInteractor(sessionSvc, sessionStore, contentStore, txm)

	subscriptionStore, err := subscriptionoutadapter.NewSQLiteSubscriptionStore(db)
	if err != nil {
		return nil, fmt.Errorf("new subscription store: %w", err)
	}
	subscriptionSvc := subscriptionservice.NewSubscriptionService(clk, subscriptionStore)
	subscriptionUC := subscriptionusecase.NewInteractor(subscriptionSvc, subscriptionStore, sessionUC)

	templateStore, err := templateoutadapter.NewSQLiteTemplateStore(db)
	if err != nil {
		return nil, fmt.Errorf("new template store: %w", err)
	}
	linkStore, err := templateoutadapter.NewSQLiteLinkStore(db)
	if err != nil {
		return nil, fmt.Errorf("new link store: %w", err)
	}
	templateUC := templateusecase.NewInteractor(clk, templateStore, linkStore, sessionUC, txm)

	return &App{
		RosterCLI:       rosterinadapter.NewCLIHandler(rosterUC),
		SessionCLI:      sessioninadapter.NewCLIHandler(sessionUC),
		SubscriptionCLI: subscriptioninadapter.NewCLIHandler(subscriptionUC),
		TemplateCLI:     templateinadapter.NewCLIHandler(templateUC),
	}, nil
}

// RunTUI resolves the acting user and hands control to Bubble Tea. Key and
// render debugging goes to a file, never the terminal the TUI owns.
func RunTUI(cfg config.Config, app *App) error {
	if os.Getenv("COURTSIDE_DEBUG") != "" {
		f, err := tea.LogToFile("courtside-debug.log", "courtside")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	user, err := app.RosterCLI.GetByUsername(context.Background(), cfg.User)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("unknown user %q (run `courtside seed` first or set --user)", cfg.User)
		}
		return err
	}

	model := uiapp.NewModel(user, app.SessionCLI, app.SubscriptionCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// Seed loads a small demo roster and one session so the TUI has something to
// show on first run. Existing usernames are left untouched.
func Seed(ctx context.Context, app *App) error {
	coach, err := seedUser(ctx, app, rosterdto.CreateUserInput{
		Username:    "coach_peter",
		DisplayName: "Coach Peter",
		Role:        "coach",
	})
	if err != nil {
		return err
	}
	if _, err := seedUser(ctx, app, rosterdto.CreateUserInput{
		Username:    "alice",
		DisplayName: "Alice",
		Role:        "player",
		SkillLevel:  "beginner",
		Goals:       "Improve consistency on serve",
	}); err != nil {
		return err
	}
	if _, err := seedUser(ctx, app, rosterdto.CreateUserInput{
		Username:    "bob",
		DisplayName: "Bob",
		Role:        "player",
		SkillLevel:  "intermediate",
		Goals:       "Work on net play",
	}); err != nil {
		return err
	}

	existing, err := app.SessionCLI.ListByCoach(ctx, coach.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	session, err := app.SessionCLI.Create(ctx, sessiondto.CreateSessionInput{
		CoachID: coach.ID,
		Fields: sessiondto.SessionFields{
			Title:           "Serve Fundamentals",
			Description:     "Grip, toss, and contact point for a reliable first serve.",
			ScheduledDate:   "2026-09-01",
			ScheduledTime:   "17:00",
			DurationMinutes: 60,
			SkillLevel:      "beginner",
		},
	})
	if err != nil {
		return err
	}
	_, err = app.SessionCLI.AddContent(ctx, sessiondto.CreateContentInput{
		SessionID: session.ID,
		Fields: sessiondto.ContentFields{
			Type:            "warmup",
			Title:           "Shadow swings",
			DurationMinutes: 10,
		},
	})
	if err != nil {
		return err
	}
	_, err = app.SessionCLI.AddContent(ctx, sessiondto.CreateContentInput{
		SessionID: session.ID,
		Fields: sessiondto.ContentFields{
			Type:            "drill",
			Title:           "Toss and catch",
			Description:     "Groove a repeatable toss height.",
			DurationMinutes: 15,
		},
	})
	return err
}

func seedUser(ctx context.Context, app *App, input rosterdto.CreateUserInput) (rosterdto.UserOutput, error) {
	user, err := app.RosterCLI.GetByUsername(ctx, input.Username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return rosterdto.UserOutput{}, err
	}
	return app.RosterCLI.Create(ctx, input)
}
