package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Long:  `Shows every registered game together with its play statistics.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	stats := map[string]*storage.GameStats{}
	if store := openStore(); store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		} else {
			logger.Warn("could not load stats", "error", err)
		}
		store.Close()
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %6s  %6s  %5s\n", maxIDLen, "ID", maxTitleLen, "Title", "Plays", "Best", "Level")
	fmt.Printf("  %-*s  %-*s  %6s  %6s  %5s\n", maxIDLen, "--", maxTitleLen, "-----", "-----", "----", "-----")

	for _, g := range games {
		s, ok := stats[g.ID]
		if !ok {
			s = &storage.GameStats{}
		}
		fmt.Printf("  %-*s  %-*s  %6d  %6d  %5d\n", maxIDLen, g.ID, maxTitleLen, g.Title, s.GamesCount, s.HighScore, s.MaxLevel)
	}

	fmt.Println()
	fmt.Println("Run 'invaders play' to start.")
}
