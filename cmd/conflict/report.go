package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"global-conflict/internal/catalog"
	"global-conflict/internal/game"
)

// recentMessages is how many feed entries the report shows.
const recentMessages = 5

func printReport(w io.Writer, cat *catalog.Catalog, g *game.GameState) {
	fmt.Fprintf(w, "Turn %d, %s %d\n", g.Turn, time.Month(g.Month), g.Year)

	player := g.PlayerNation()
	for _, id := range g.NationIDs() {
		n := g.Nations[id]
		fmt.Fprintln(w)
		if player == nil || n.ID == player.ID {
			printOwnNation(w, cat, g, n)
		} else {
			printForeignNation(w, g, player, n)
		}
	}

	if len(g.Messages) == 0 {
		return
	}
	fmt.Fprintln(w, "\nNews")
	start := max(0, len(g.Messages)-recentMessages)
	for _, m := range g.Messages[start:] {
		fmt.Fprintf(w, "  [%s] %s: %s\n", m.Category, m.Title, m.Body)
	}
}

func printOwnNation(w io.Writer, cat *catalog.Catalog, g *game.GameState, n *game.Nation) {
	income := game.ComputeIncome(cat, n, g)
	fmt.Fprintf(w, "%s %s (you)\n", n.Flag, n.Name)
	fmt.Fprintf(w, "  Money      %12s  %s/turn\n", whole(n.Resources.Money), signed(income.Money))
	fmt.Fprintf(w, "  Food       %12s  %s/turn\n", whole(n.Resources.Food), signed(income.Food))
	fmt.Fprintf(w, "  Oil        %12s  %s/turn\n", whole(n.Resources.Oil), signed(income.Oil))
	fmt.Fprintf(w, "  Population %12s\n", whole(n.Resources.Population))
	fmt.Fprintf(w, "  Territory  %12d tiles, %d armies\n", len(g.OwnedTiles(n.ID)), len(n.Armies))

	research := "idle"
	if n.CurrentResearch != "" {
		tech, _ := cat.Tech(n.CurrentResearch)
		research = fmt.Sprintf("%s %s/%s", tech.Name, whole(n.ResearchProgress), whole(tech.Cost))
	}
	fmt.Fprintf(w, "  Research   %s (%d known)\n", research, len(n.ResearchedTechs))
}

// printForeignNation shows what the player's intelligence reveals.
func printForeignNation(w io.Writer, g *game.GameState, player, n *game.Nation) {
	intel := player.Intelligence[n.ID]
	fmt.Fprintf(w, "%s %s (intel %d%%)\n", n.Flag, n.Name, intel)
	fmt.Fprintf(w, "  Treasury   %s\n", game.Observe(intel, n.Resources.Money))
	fmt.Fprintf(w, "  Military   %s\n", game.Observe(intel, float64(game.MilitaryEstimate(n))))
	if r := g.Relation(n.ID, player.ID); r != nil {
		fmt.Fprintf(w, "  Stance     %s (opinion %+d)\n", r.Status, r.Opinion)
	}
}

func whole(v float64) string {
	return humanize.Comma(int64(math.Floor(v)))
}

func signed(v float64) string {
	if v >= 0 {
		return "+" + whole(v)
	}
	return whole(v)
}
