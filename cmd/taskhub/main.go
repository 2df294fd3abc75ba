// Command taskhub is a terminal client for the TaskHub services: one
// authenticated session, with tasks, projects, and notifications kept in
// local resource stores.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/taskhub/taskhub-client/internal/app"
	"github.com/taskhub/taskhub-client/internal/config"
	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
	"github.com/taskhub/taskhub-client/internal/navigation"
	"github.com/taskhub/taskhub-client/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()
	nav := navigation.FuncNavigator(func() {
		fmt.Fprintln(os.Stderr, "session expired; run `taskhub login`")
	})

	a, err := app.New(ctx, cfg, log, nav)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise client")
	}

	if err := run(ctx, a, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, command string, args []string) error {
	switch command {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		_ = fs.Parse(args)

		user, err := a.Session.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s <%s>\n", user.FullName, user.Email)
		return nil

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		name := fs.String("name", "", "full name")
		password := fs.String("password", "", "account password")
		_ = fs.Parse(args)

		user, err := a.Session.Register(ctx, *email, *name, *password)
		if err != nil {
			return err
		}
		fmt.Printf("registered and logged in as %s <%s>\n", user.FullName, user.Email)
		return nil

	case "logout":
		a.Session.Logout()
		fmt.Println("logged out")
		return nil

	case "whoami":
		user, err := a.Users.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", user.FullName, user.Email)
		return nil

	case "tasks":
		fs := flag.NewFlagSet("tasks", flag.ExitOnError)
		project := fs.String("project", "", "filter by project id")
		_ = fs.Parse(args)

		a.Tasks.Fetch(ctx, *project)
		if msg := a.Tasks.Err(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		for _, t := range a.Tasks.Items() {
			fmt.Printf("%s  [%s/%s]  %s\n", t.ID, t.Status, t.Priority, t.Title)
		}
		return nil

	case "task-add":
		fs := flag.NewFlagSet("task-add", flag.ExitOnError)
		title := fs.String("title", "", "task title")
		desc := fs.String("desc", "", "task description")
		project := fs.String("project", "", "project id")
		priority := fs.String("priority", "", "low|medium|high|urgent (default medium)")
		_ = fs.Parse(args)

		task, err := a.Tasks.Create(ctx, *title, *desc, *project, domain.TaskPriority(*priority))
		if err != nil {
			return err
		}
		fmt.Printf("created task %s\n", task.ID)
		return nil

	case "task-done":
		fs := flag.NewFlagSet("task-done", flag.ExitOnError)
		id := fs.String("id", "", "task id")
		_ = fs.Parse(args)

		done := domain.StatusDone
		task, err := a.Tasks.Update(ctx, *id, ports.TaskPatch{Status: &done})
		if err != nil {
			return err
		}
		fmt.Printf("task %s is %s\n", task.ID, task.Status)
		return nil

	case "projects":
		a.Projects.Fetch(ctx)
		if msg := a.Projects.Err(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		for _, p := range a.Projects.Items() {
			fmt.Printf("%s  %s\n", p.ID, p.Name)
		}
		return nil

	case "project-add":
		fs := flag.NewFlagSet("project-add", flag.ExitOnError)
		name := fs.String("name", "", "project name")
		desc := fs.String("desc", "", "project description")
		_ = fs.Parse(args)

		project, err := a.Projects.Create(ctx, *name, *desc)
		if err != nil {
			return err
		}
		fmt.Printf("created project %s\n", project.ID)
		return nil

	case "notifications":
		fs := flag.NewFlagSet("notifications", flag.ExitOnError)
		unread := fs.Bool("unread", false, "only unread notifications")
		_ = fs.Parse(args)

		a.Notifications.Fetch(ctx, *unread)
		if msg := a.Notifications.Err(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		for _, n := range a.Notifications.Items() {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s %s  %s: %s\n", marker, n.ID, n.Title, n.Message)
		}
		fmt.Printf("%d unread\n", a.Notifications.UnreadCount())
		return nil

	case "notif-read":
		fs := flag.NewFlagSet("notif-read", flag.ExitOnError)
		id := fs.String("id", "", "notification id")
		_ = fs.Parse(args)

		if _, err := a.Notifications.MarkRead(ctx, *id); err != nil {
			return err
		}
		fmt.Println("marked read")
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: taskhub <command> [flags]

commands:
  login | register | logout | whoami
  tasks | task-add | task-done
  projects | project-add
  notifications | notif-read`)
}
