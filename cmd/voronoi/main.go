// Command voronoi drives the sweepline algorithm against a set of
// randomly scattered sites inside a bounded rectangle and prints, one line
// per cell, how many edges the organized cell has (or why it could not be
// organized).
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	voronoi "github.com/xswzaq44321/Voronoi-Diagram"
	"github.com/xswzaq44321/Voronoi-Diagram/dcelgraph"
)

var (
	width, height int
	siteCount     int
	seed          int64
	emitDCEL      bool
)

var rootCmd = &cobra.Command{
	Use:   "voronoi",
	Short: "Build a Voronoi diagram over random sites and print its cells",
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVar(&width, "width", 100, "bounding rectangle width")
	rootCmd.Flags().IntVar(&height, "height", 100, "bounding rectangle height")
	rootCmd.Flags().IntVar(&siteCount, "sites", 10, "number of randomly placed sites")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random seed for site placement")
	rootCmd.Flags().BoolVar(&emitDCEL, "dcel", false, "also materialize and summarize a half-edge mesh")
}

func run(cmd *cobra.Command, args []string) error {
	vmap := voronoi.New(width, height)
	rng := rand.New(rand.NewSource(seed))

	placed := 0
	for placed < siteCount {
		x, y := rng.Intn(width), rng.Intn(height)
		if _, err := vmap.AddSite(x, y); err == nil {
			placed++
		}
	}

	sl := voronoi.NewSweepLine()
	sl.Load(vmap)
	if err := sl.Run(); err != nil {
		return fmt.Errorf("run sweepline: %w", err)
	}

	for _, cell := range vmap.Cells() {
		if err := cell.Organize(); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "site %v: %v\n", cell.Focus, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "site %v: %d edges\n", cell.Focus, len(cell.Edges()))
	}

	if emitDCEL {
		graph, err := dcelgraph.Build(vmap)
		if err != nil {
			return fmt.Errorf("build dcel: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dcel: %d vertices, %d half-edges, %d faces\n",
			len(graph.Vertices), len(graph.HalfEdges), len(graph.Faces))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
