package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanvi/lexi/internal/app"
	"github.com/tanvi/lexi/internal/store"
)

// openStore resolves the database path and opens the store, seeding the
// starter list on first run.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := st.Bootstrap(cmd.Context()); err != nil {
		st.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return st, nil
}

// runApp opens the store and launches the TUI at the home screen.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(st)
}
