package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goforj/menucache/menusearch"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search today's items by name",
		Long:  "Fuzzy-matches the query against today's item names, best match first. Misspellings are tolerated.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")

	s, err := openSession(cmd)
	if err != nil {
		exitErr("open session", err)
	}
	snap, err := s.fetch(cmd)
	if err != nil {
		exitErr("fetch menu", err)
	}

	printItems(menusearch.Filter(snap.DailyItems, query))
}
