package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goforj/menucache/menu"
	"github.com/goforj/menucache/menusync"
)

func init() {
	cmd := &cobra.Command{
		Use:   "favorite [name]",
		Short: "Toggle a favorite item",
		Long:  "Adds the named item to your favorites, or removes it when already present. Requires MENU_API_TOKEN.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runFavorite,
	}

	RootCmd.AddCommand(cmd)
}

func runFavorite(cmd *cobra.Command, args []string) {
	name := strings.Join(args, " ")

	s, err := openSession(cmd)
	if err != nil {
		exitErr("open session", err)
	}
	if s.cfg.Token == "" {
		exitErr("toggle favorite", errors.New("set MENU_API_TOKEN to manage favorites"))
	}
	snap, err := s.coordinator.FetchForUser(cmd.Context(), s.cfg.Token)
	if err != nil {
		exitErr("fetch preferences", err)
	}

	favorites, err := s.syncer.ToggleFavorite(cmd.Context(), menu.Item{Name: name}, snap.UserPreferences, s.cfg.Token)
	if errors.Is(err, menusync.ErrAuthRequired) {
		exitErr("toggle favorite", errors.New("set MENU_API_TOKEN to manage favorites"))
	}
	if err != nil {
		exitErr("toggle favorite", err)
	}

	// The toggle is optimistic; drain the post before the process exits.
	s.syncer.Wait()

	printFavorites(favorites)
}

func printFavorites(favorites []menu.Item) {
	if formatFlag == "json" {
		b, _ := json.MarshalIndent(favorites, "", "  ")
		fmt.Println(string(b))
		return
	}
	if len(favorites) == 0 {
		fmt.Println("no favorites")
		return
	}
	for _, item := range favorites {
		fmt.Println(item.Name)
	}
}
