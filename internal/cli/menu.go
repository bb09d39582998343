package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goforj/menucache/menu"
)

func init() {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show today's items",
		Long:  "Fetches today's per-meal items (cache-first) and prints them, optionally narrowed by venue and meal period.",
		Run:   runMenu,
	}

	cmd.Flags().StringP("location", "l", "", "Filter by venues (comma-separated)")
	cmd.Flags().StringP("time", "t", "", "Filter by meal periods (comma-separated; default: the one being served now)")
	cmd.Flags().Bool("all", false, "Show every venue and meal period")

	RootCmd.AddCommand(cmd)
}

func runMenu(cmd *cobra.Command, args []string) {
	locationsFlag, _ := cmd.Flags().GetString("location")
	timesFlag, _ := cmd.Flags().GetString("time")
	showAll, _ := cmd.Flags().GetBool("all")

	s, err := openSession(cmd)
	if err != nil {
		exitErr("open session", err)
	}
	snap, err := s.fetch(cmd)
	if err != nil {
		exitErr("fetch menu", err)
	}

	locations := splitList(locationsFlag)
	if len(locations) == 0 {
		locations = menu.Locations
	}
	times := splitList(timesFlag)
	if len(times) == 0 && !showAll {
		if current := menu.CurrentMealPeriod(time.Now()); current != "" {
			times = []string{current}
		}
	}
	if len(times) == 0 {
		times = menu.TimesOfDay
	}

	printItems(menu.FilterVisible(snap.DailyItems, locations, times))
}

func printItems(items []menu.DailyItem) {
	if formatFlag == "json" {
		b, _ := json.MarshalIndent(items, "", "  ")
		fmt.Println(string(b))
		return
	}
	if len(items) == 0 {
		fmt.Println("no items")
		return
	}
	for _, item := range items {
		fmt.Printf("%-30s %s / %s\n", item.Name, item.Location, item.TimeOfDay)
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
