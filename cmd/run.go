package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/teachmate/internal/app"
	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/export"
	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/llm"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/progress"
	"github.com/abhisek/teachmate/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat := catalog.New(st)
	records := progress.New(st)
	opts := app.Options{
		Navigator: nav.New(cat, records),
		Catalog:   cat,
		Exporter:  export.New(st),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.RequestLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Homework = homework.NewService(provider, homework.DefaultConfig())
	}

	return app.Run(opts)
}
