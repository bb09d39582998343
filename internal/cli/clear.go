package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goforj/menucache"
)

func init() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop the cached day data",
		Long:  "Removes every cached slot and the date marker, forcing the next command to fetch from the backend.",
		Run:   runClear,
	}

	RootCmd.AddCommand(cmd)
}

func runClear(cmd *cobra.Command, args []string) {
	store := menucache.NewFileStore(cmd.Context(), getCacheDir())
	cache := menucache.NewDayCache(store)
	if err := cache.Clear(cmd.Context()); err != nil {
		exitErr("clear cache", err)
	}
	fmt.Println("cache cleared")
}
