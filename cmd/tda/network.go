package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lamellae/tda/filtration"
	"github.com/lamellae/tda/graphio"
	"github.com/lamellae/tda/persistence"
	"github.com/lamellae/tda/rips"
)

// NewNetworkCommand creates the "network" subcommand: persistence diagrams
// of a single weighted graph.
func NewNetworkCommand(opts *rootOptions) *cobra.Command {
	var (
		invertWeights bool
		normalize     bool
	)

	cmd := &cobra.Command{
		Use:   "network FILE MAXDIM",
		Short: "Compute persistence diagrams of one weighted network",
		Long: "Reads a weighted graph (GML, Pajek or edge list), expands it to the\n" +
			"given dimension and stores one persistence diagram file per homological\n" +
			"dimension in the output directory.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxDim, err := strconv.Atoi(args[1])
			if err != nil || maxDim < 1 {
				return fmt.Errorf("invalid expansion dimension %q", args[1])
			}

			return runNetwork(opts, args[0], maxDim, invertWeights, normalize)
		},
	}

	cmd.Flags().BoolVarP(&invertWeights, "invert-weights", "i", false,
		"replace every weight w by max-w before expansion")
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false,
		"rescale weights to [0,1] before expansion")

	return cmd
}

func runNetwork(opts *rootOptions, path string, maxDim int, invertWeights, normalize bool) error {
	log := opts.logger

	log.Info("reading network", zap.String("file", path))
	K, err := graphio.ReadGraphFile(path)
	if err != nil {
		return err
	}

	_, maxWeight, err := filtration.MinMax(K)
	if err != nil {
		return fmt.Errorf("network has no weighted edges: %w", err)
	}

	if normalize {
		changed, err := filtration.Normalize(K)
		if err != nil {
			return err
		}
		if !changed {
			log.Warn("all weights identical, skipping normalisation")
		} else {
			maxWeight = 1
			log.Info("normalised weights to [0,1]")
		}
	}
	if invertWeights {
		if err := filtration.Invert(K); err != nil {
			return err
		}
		log.Info("inverted filtration weights")
	}

	log.Info("expanding complex", zap.Int("dimension", maxDim))
	E, err := rips.Expand(K, maxDim)
	if err != nil {
		return err
	}
	if err := rips.AssignMaximumWeight(E); err != nil {
		return err
	}
	E.SortByData()
	log.Info("expanded complex", zap.Int("simplices", E.Size()))

	dgms, err := persistence.CalculateDiagrams(E)
	if err != nil {
		return err
	}

	for _, d := range dgms {
		d.RemoveDiagonal()

		name := fmt.Sprintf("%s_d%d.txt", stem(path), d.Dimension())
		outputPath := filepath.Join(opts.cfg.OutputDir, name)
		log.Info("storing diagram",
			zap.Int("dimension", d.Dimension()),
			zap.Int("points", d.Size()),
			zap.String("file", outputPath))

		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(f, "# Original filename: %s\n", path)
		fmt.Fprintf(f, "# d                : %d\n", d.Dimension())
		err = graphio.WriteDiagram(f, d, 2*maxWeight)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// stem returns the base name of a path without its extension.
func stem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
