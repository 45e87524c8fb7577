package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanvi/lexi/internal/store"
	"github.com/tanvi/lexi/internal/vocab"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage word lists",
}

var listCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new word list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list, err := vocab.NewList(args[0])
		if err != nil {
			return err
		}
		if _, err := st.Lists().ByName(cmd.Context(), list.Name); err == nil {
			return fmt.Errorf("a list named %q already exists", list.Name)
		}
		if err := st.Lists().Create(cmd.Context(), list); err != nil {
			return err
		}
		fmt.Printf("Created list %q\n", list.Name)
		return nil
	},
}

var listLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show all lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lists, err := st.Lists().All(cmd.Context())
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			fmt.Println("No lists yet. Create one with: lexi list create <name>")
			return nil
		}

		fmt.Printf("%-24s  %-6s  %-5s  %s\n", "Name", "Words", "Due", "Last used")
		fmt.Println(strings.Repeat("─", 60))
		for i := range lists {
			full, err := st.Lists().ByID(cmd.Context(), lists[i].ID)
			if err != nil {
				return err
			}
			fmt.Printf("%-24s  %-6d  %-5d  %s\n",
				full.Name,
				len(full.Entries),
				len(full.DueEntries()),
				full.LastUsedAt.Local().Format(time.DateOnly),
			)
		}
		return nil
	},
}

var listRenameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list, err := loadList(cmd, st, args[0])
		if err != nil {
			return err
		}
		newName, err := vocab.ValidateTerm(args[1])
		if err != nil {
			return err
		}
		if _, err := st.Lists().ByName(cmd.Context(), newName); err == nil {
			return fmt.Errorf("a list named %q already exists", newName)
		}

		list.Name = newName
		list.Touch()
		if err := st.Lists().Save(cmd.Context(), list); err != nil {
			return err
		}
		fmt.Printf("Renamed %q to %q\n", args[0], newName)
		return nil
	},
}

var listRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a list and all its words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		list, err := loadList(cmd, st, args[0])
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && len(list.Entries) > 0 {
			fmt.Printf("List %q holds %d words. Re-run with --force to delete them all.\n",
				list.Name, len(list.Entries))
			return nil
		}

		if err := st.Lists().Delete(cmd.Context(), list.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted list %q\n", list.Name)
		return nil
	},
}

// loadList fetches a list by name with a friendly not-found error.
func loadList(cmd *cobra.Command, st *store.Store, name string) (*vocab.WordList, error) {
	list, err := st.Lists().ByName(cmd.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no list named %q", name)
	}
	return list, err
}

func init() {
	listRmCmd.Flags().Bool("force", false, "Delete even when the list is not empty")

	listCmd.AddCommand(listCreateCmd)
	listCmd.AddCommand(listLsCmd)
	listCmd.AddCommand(listRenameCmd)
	listCmd.AddCommand(listRmCmd)
}
