package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanvi/lexi/internal/app"
	"github.com/tanvi/lexi/internal/store"
	"github.com/tanvi/lexi/internal/vocab"
)

var studyCmd = &cobra.Command{
	Use:   "study [list]",
	Short: "Start a study session",
	Long:  "Start a study session on the named list, or the most recently used list when omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var list *vocab.WordList
		if len(args) == 1 {
			list, err = st.Lists().ByName(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no list named %q", args[0])
			}
		} else {
			list, err = mostRecentList(cmd, st)
		}
		if err != nil {
			return err
		}

		return app.RunStudy(st, list)
	},
}

// mostRecentList loads the most recently used list with its entries.
func mostRecentList(cmd *cobra.Command, st *store.Store) (*vocab.WordList, error) {
	lists, err := st.Lists().All(cmd.Context())
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, errors.New("no lists yet; create one with: lexi list create <name>")
	}
	return st.Lists().ByID(cmd.Context(), lists[0].ID)
}
