package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"global-conflict/internal/catalog"
)

var catalogFile string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List biomes, buildings, units and technologies",
	Long:  `Catalog prints the built-in definitions, or validates and prints a custom catalog file given with --file.`,
	RunE:  listCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFile, "file", "", "Catalog YAML file to load instead of the built-in one")
}

func listCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	if catalogFile != "" {
		f, err := os.Open(catalogFile)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		if cat, err = catalog.Load(f); err != nil {
			return err
		}
	}
	printCatalog(cmd.OutOrStdout(), cat)
	return nil
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "Biomes")
	for _, id := range cat.BiomeIDs() {
		b, _ := cat.Biome(id)
		fmt.Fprintf(w, "  %-10s defense %+4.0f%%  move %d\n", b.ID, b.Defense, b.MoveCost)
	}

	fmt.Fprintln(w, "\nBuildings")
	for _, id := range cat.BuildingIDs() {
		b, _ := cat.Building(id)
		fmt.Fprintf(w, "  %-18s $%-8s %s\n", b.Name, humanize.Comma(int64(b.Cost)), b.Description)
	}

	fmt.Fprintln(w, "\nUnits")
	for _, id := range cat.UnitIDs() {
		u, _ := cat.Unit(id)
		req := ""
		if u.TechRequired != "" {
			req = "requires " + string(u.TechRequired)
		}
		fmt.Fprintf(w, "  %-26s $%-10s atk %-5.0f def %-4.0f mv %-3d %s\n",
			u.Name, humanize.Comma(int64(u.Cost)), u.Attack, u.Defense, u.Movement, req)
	}

	fmt.Fprintln(w, "\nTechnologies")
	for _, id := range cat.TechIDs() {
		t, _ := cat.Tech(id)
		pre := make([]string, len(t.Prerequisites))
		for i, p := range t.Prerequisites {
			pre[i] = string(p)
		}
		fmt.Fprintf(w, "  %-24s %6s RP  after [%s]\n", t.Name, humanize.Comma(int64(t.Cost)), strings.Join(pre, ", "))
	}
}
