package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"courtside/internal/bootstrap"
	rosterdto "courtside/internal/modules/roster/dto"
	templatedto "courtside/internal/modules/template/dto"
	"courtside/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	dbPath     string
	user       string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "courtside",
		Short:         "Terminal training session manager for coaches and players",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file path (YAML)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path")
	root.PersistentFlags().StringVar(&flags.user, "user", "", "acting username")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newSeedCmd(flags))
	root.AddCommand(newUserCmd(flags))
	root.AddCommand(newSessionCmd(flags))
	root.AddCommand(newSubCmd(flags))
	root.AddCommand(newTemplateCmd(flags))
	return root
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	if flags.user != "" {
		cfg.User = flags.user
	}
	return cfg, nil
}

func loadApp(flags *rootFlags) (*bootstrap.App, config.Config, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg)
	return app, cfg, err
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the courtside terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(flags)
			if err != nil {
				return err
			}
			if cfg.User == "" {
				return fmt.Errorf("no user set: pass --user or set COURTSIDE_USER")
			}
			return bootstrap.RunTUI(cfg, app)
		},
	}
}

func newSeedCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo users and a sample session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			if err := bootstrap.Seed(context.Background(), app); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "seeded demo data (users: coach_peter, alice, bob)")
			return nil
		},
	}
}

func newUserCmd(flags *rootFlags) *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "Roster commands"}

	user.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			users, err := app.RosterCLI.List(context.Background())
			if err != nil {
				return err
			}
			table := uitable.New()
			table.AddRow("ID", "USERNAME", "NAME", "ROLE", "SKILL")
			for _, u := range users {
				table.AddRow(u.ID, u.Username, u.DisplayName, u.Role, u.SkillLevel)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	})

	var role, skill, name, goals string
	addCmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			out, err := app.RosterCLI.Create(context.Background(), rosterdto.CreateUserInput{
				Username:    args[0],
				DisplayName: name,
				Role:        role,
				SkillLevel:  skill,
				Goals:       goals,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id=%d)\n", out.Username, out.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&role, "role", "player", "role: coach|player")
	addCmd.Flags().StringVar(&skill, "skill", "", "skill level: beginner|intermediate|advanced")
	addCmd.Flags().StringVar(&name, "name", "", "display name")
	addCmd.Flags().StringVar(&goals, "goals", "", "training goals")
	user.AddCommand(addCmd)

	return user
}

func newSessionCmd(flags *rootFlags) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Session query commands"}

	session.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			sessions, err := app.SessionCLI.ListAll(context.Background())
			if err != nil {
				return err
			}
			table := uitable.New()
			table.AddRow("ID", "TITLE", "DATE", "TIME", "DURATION", "SKILL")
			for _, s := range sessions {
				table.AddRow(s.ID, s.Title, s.ScheduledDate, s.ScheduledTime, s.DurationMinutes, s.SkillLevel)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one session with its training content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			detail, err := app.SessionCLI.Get(context.Background(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s := detail.Session
			_, _ = fmt.Fprintf(out, "%s\n", s.Title)
			_, _ = fmt.Fprintf(out, "date=%s time=%s duration=%dmin skill=%s\n",
				s.ScheduledDate, s.ScheduledTime, s.DurationMinutes, s.SkillLevel)
			if s.Description != "" {
				_, _ = fmt.Fprintln(out, s.Description)
			}
			if len(detail.Content) == 0 {
				_, _ = fmt.Fprintln(out, "no training content")
				return nil
			}
			table := uitable.New()
			table.AddRow("#", "TYPE", "TITLE", "DURATION")
			for _, c := range detail.Content {
				table.AddRow(c.OrderIndex, c.Type, c.Title, c.DurationMinutes)
			}
			_, _ = fmt.Fprintln(out, table)
			return nil
		},
	})

	return session
}

func newSubCmd(flags *rootFlags) *cobra.Command {
	sub := &cobra.Command{Use: "sub", Short: "Subscription query commands"}

	sub.AddCommand(&cobra.Command{
		Use:   "list <session-id>",
		Short: "List subscriptions for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			subs, err := app.SubscriptionCLI.ListBySession(context.Background(), id)
			if err != nil {
				return err
			}
			table := uitable.New()
			table.AddRow("ID", "USER", "STATUS", "SUBSCRIBED", "COMPLETED")
			for _, s := range subs {
				completed := ""
				if s.IsCompleted() {
					completed = s.CompletedAt.Format("2006-01-02 15:04")
				}
				table.AddRow(s.ID, s.UserID, s.Status, s.SubscribedAt.Format("2006-01-02 15:04"), completed)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	})

	return sub
}

func newTemplateCmd(flags *rootFlags) *cobra.Command {
	template := &cobra.Command{Use: "template", Short: "Training template commands"}

	template.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List training templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			templates, err := app.TemplateCLI.List(context.Background())
			if err != nil {
				return err
			}
			table := uitable.New()
			table.AddRow("ID", "TITLE", "TYPE", "DURATION", "SKILL")
			for _, t := range templates {
				table.AddRow(t.ID, t.Title, t.Type, t.DurationMinutes, t.SkillLevel)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	})

	var kind, desc, skill string
	var duration int
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a training template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cfg, err := loadApp(flags)
			if err != nil {
				return err
			}
			if cfg.User == "" {
				return fmt.Errorf("no user set: pass --user or set COURTSIDE_USER")
			}
			coach, err := app.RosterCLI.GetByUsername(context.Background(), cfg.User)
			if err != nil {
				return err
			}
			out, err := app.TemplateCLI.Create(context.Background(), templatedto.CreateTemplateInput{
				Title:           args[0],
				Description:     desc,
				Type:            kind,
				DurationMinutes: duration,
				SkillLevel:      skill,
				CreatedBy:       coach.ID,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created template %s (id=%d)\n", out.Title, out.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&kind, "type", "drill", "content type: drill|exercise|warmup|cooldown")
	addCmd.Flags().StringVar(&desc, "desc", "", "description")
	addCmd.Flags().StringVar(&skill, "skill", "", "skill level: beginner|intermediate|advanced")
	addCmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	template.AddCommand(addCmd)

	template.AddCommand(&cobra.Command{
		Use:   "attach <session-id> <template-id>",
		Short: "Attach a template to a session's plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			templateID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id %q", args[1])
			}
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			link, err := app.TemplateCLI.Attach(context.Background(), sessionID, templateID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "attached template %d to session %d at position %d\n",
				link.TemplateID, link.SessionID, link.OrderIndex)
			return nil
		},
	})

	template.AddCommand(&cobra.Command{
		Use:   "plan <session-id>",
		Short: "Show templates attached to a session, in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}
			app, _, err := loadApp(flags)
			if err != nil {
				return err
			}
			attached, err := app.TemplateCLI.ListForSession(context.Background(), id)
			if err != nil {
				return err
			}
			table := uitable.New()
			table.AddRow("#", "TEMPLATE", "TYPE", "DURATION")
			for _, a := range attached {
				table.AddRow(a.Link.OrderIndex, a.Template.Title, a.Template.Type, a.Template.DurationMinutes)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	})

	return template
}
