package main

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lamellae/tda/graphio"
	"github.com/lamellae/tda/persistence"
)

// reDataSetID extracts the first run of digits from a filename, the data set
// identifier the Betti curve is indexed by.
var reDataSetID = regexp.MustCompile(`\D*(\d+)`)

// NewBettiCommand creates the "betti" subcommand: first Betti numbers of a
// series of graphs, printed as an identifier-indexed curve.
func NewBettiCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "betti FILE...",
		Short: "Print the first Betti number of every input graph",
		Long: "Reads a series of GML graphs whose filenames carry a numeric identifier\n" +
			"and prints one \"id<TAB>betti_1\" line per graph, ordered by identifier.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBetti(opts, cmd, args)
		},
	}
}

func runBetti(opts *rootOptions, cmd *cobra.Command, paths []string) error {
	log := opts.logger

	idToBetti := make(map[int]int, len(paths))
	for _, path := range paths {
		log.Info("processing graph", zap.String("file", path))

		K, err := graphio.ReadGraphFile(path)
		if err != nil {
			return err
		}
		K.SortByData()

		dgms, err := persistence.CalculateDiagrams(K, persistence.WithDualize())
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if len(dgms) < 2 {
			return fmt.Errorf("%s: graph must have at least one edge", path)
		}

		matches := reDataSetID.FindStringSubmatch(path)
		if matches == nil {
			return fmt.Errorf("%s: unable to identify a numeric data set identifier", path)
		}
		id, err := strconv.Atoi(matches[1])
		if err != nil {
			return fmt.Errorf("%s: data set identifier %q: %w", path, matches[1], err)
		}

		idToBetti[id] = dgms[1].Betti()
	}

	ids := make([]int, 0, len(idToBetti))
	for id := range idToBetti {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", id, idToBetti[id])
	}

	return nil
}
