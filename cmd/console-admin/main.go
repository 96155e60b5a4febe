// Command console-admin is the operational CLI for the console service:
// database migrations, audit trail inspection, and session maintenance.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/sikayet/console-api/config"
	"github.com/sikayet/console-api/internal/adapters/redisstore"
	"github.com/sikayet/console-api/internal/bootstrap"
	"github.com/sikayet/console-api/internal/data"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations for the audit trail",
			run:         runMigrate,
		},
		"audit-list": {
			name:        "audit-list",
			description: "List audit log entries, newest first",
			run:         runAuditList,
		},
		"sessions-clear": {
			name:        "sessions-clear",
			description: "Delete console sessions from Redis (current and legacy key layouts)",
			run:         runSessionsClear,
		},
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: console-admin <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, cmds[name].description)
	}
	_ = tw.Flush()
}

func runMigrate(ctx *commandContext, _ []string) error {
	db, err := bootstrap.ConnectDB(ctx.Config.Postgres, ctx.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			ctx.Logger.Warn("close database", "error", closeErr)
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx.Ctx, defaultMigrationTimeout)
	defer cancel()
	return bootstrap.RunMigrations(runCtx, db, ctx.Logger)
}

func runAuditList(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("audit-list", flag.ContinueOnError)
	actor := fs.String("actor", "", "filter by actor email")
	entityType := fs.String("entity-type", "", "filter by entity type (guide, faq, user, ...)")
	entityID := fs.String("entity-id", "", "filter by entity id")
	limit := fs.Int("limit", 50, "maximum entries to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := bootstrap.ConnectDB(ctx.Config.Postgres, ctx.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			ctx.Logger.Warn("close database", "error", closeErr)
		}
	}()

	entries, err := data.NewAuditRepo(db).List(ctx.Ctx, data.AuditListOptions{
		Actor:      *actor,
		EntityType: *entityType,
		EntityID:   *entityID,
		Limit:      *limit,
	})
	if err != nil {
		return fmt.Errorf("list audit entries: %w", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tACTOR\tACTION\tENTITY\tID\tOUTCOME\tDETAIL")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Format(time.RFC3339), e.Actor, e.Action,
			e.EntityType, e.EntityID, e.Outcome, e.Detail)
	}
	return tw.Flush()
}

func runSessionsClear(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("sessions-clear", flag.ContinueOnError)
	dryRun := fs.Bool("dry-run", false, "print matching keys without deleting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := bootstrap.ConnectRedis(ctx.Config.Redis, ctx.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			ctx.Logger.Warn("close redis", "error", closeErr)
		}
	}()

	var total int
	for _, prefix := range redisstore.KeyPrefixes() {
		iter := client.Scan(ctx.Ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx.Ctx) {
			key := iter.Val()
			total++
			if *dryRun {
				fmt.Println(key)
				continue
			}
			if delErr := client.Del(ctx.Ctx, key).Err(); delErr != nil {
				return fmt.Errorf("delete key %s: %w", key, delErr)
			}
		}
		if iterErr := iter.Err(); iterErr != nil {
			return fmt.Errorf("scan prefix %s: %w", prefix, iterErr)
		}
	}

	if *dryRun {
		ctx.Logger.Info("sessions matched", "count", total)
	} else {
		ctx.Logger.Info("sessions cleared", "count", total)
	}
	return nil
}
