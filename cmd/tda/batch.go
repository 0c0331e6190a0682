package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/lamellae/tda/core"
	"github.com/lamellae/tda/filtration"
	"github.com/lamellae/tda/graphio"
	"github.com/lamellae/tda/matrix"
	"github.com/lamellae/tda/persistence"
	"github.com/lamellae/tda/rips"
)

// batchOptions holds the flags of the "batch" subcommand.
type batchOptions struct {
	dimension           int
	infinityFactor      float64
	useSumOfDegrees     bool
	closenessCentrality bool
	storeGraphs         bool
	workers             int
}

// NewBatchCommand creates the "batch" subcommand: degree-filtration
// persistence over a collection of graphs stored as sparse adjacency
// matrices.
func NewBatchCommand(opts *rootOptions) *cobra.Command {
	var bo batchOptions

	cmd := &cobra.Command{
		Use:   "batch PATH",
		Short: "Compute persistence diagrams of a sparse adjacency matrix batch",
		Long: "Loads a batch of graphs from a sparse adjacency matrix file set, puts a\n" +
			"degree-based filtration on every graph and stores one persistence diagram\n" +
			"file per graph and homological dimension in the output directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bo.workers == 0 {
				bo.workers = opts.cfg.Workers
			}

			return runBatch(opts, args[0], bo)
		},
	}

	cmd.Flags().IntVarP(&bo.dimension, "dimension", "d", 0,
		"expand every complex up to this dimension (0 keeps the 1-skeleton)")
	cmd.Flags().Float64VarP(&bo.infinityFactor, "infinity", "f", 2,
		"factor applied to the maximum degree for unpaired points")
	cmd.Flags().BoolVarP(&bo.useSumOfDegrees, "sum", "s", false,
		"use the degree-sum filtration instead of the degree maximum")
	cmd.Flags().BoolVarP(&bo.closenessCentrality, "closeness-centrality", "c", false,
		"also store closeness centrality values per graph")
	cmd.Flags().BoolVarP(&bo.storeGraphs, "graphs", "g", false,
		"also store every filtrated graph in GML format")
	cmd.Flags().IntVarP(&bo.workers, "workers", "w", 0,
		"parallel per-graph workers (0 uses the configured default)")

	return cmd
}

func runBatch(opts *rootOptions, path string, bo batchOptions) error {
	log := opts.logger

	log.Info("reading batch", zap.String("path", path))
	batch, err := graphio.ReadSparseAdjacencyBatch(path)
	if err != nil {
		return err
	}
	total := len(batch.Complexes)
	log.Info("read batch", zap.Int("graphs", total))
	if total == 0 {
		log.Warn("batch is empty, nothing to do")

		return nil
	}

	workers := bo.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Phase one: centrality, expansion and the degree filtration, one graph
	// per task. Each task records its local degree maximum; the global
	// maximum calibrates the unpaired points below.
	localMax := make([]float64, total)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := range batch.Complexes {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			K := batch.Complexes[i]

			if bo.closenessCentrality {
				if err := storeCloseness(opts, K, i, total); err != nil {
					return err
				}
			}

			if bo.dimension > 1 {
				E, err := rips.Expand(K, bo.dimension)
				if err != nil {
					return fmt.Errorf("graph %d: %w", i, err)
				}
				batch.Complexes[i] = E
				K = E
			}

			degrees, err := filtration.Degrees(K)
			if err != nil {
				return fmt.Errorf("graph %d: %w", i, err)
			}
			if len(degrees) > 0 {
				localMax[i] = floats.Max(degrees)
			}

			if bo.useSumOfDegrees {
				err = rips.AssignVertexData(K, degrees, 0,
					func(acc, v float64) float64 { return acc + v })
			} else {
				err = rips.AssignVertexData(K, degrees, math.Inf(-1), math.Max)
			}
			if err != nil {
				return fmt.Errorf("graph %d: %w", i, err)
			}
			K.SortByData()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	maxDegree := floats.Max(localMax)
	log.Info("assigned degree filtration",
		zap.Float64("max_degree", maxDegree),
		zap.Bool("sum", bo.useSumOfDegrees))

	// Phase two: optional GML export and the diagrams themselves.
	unpairedDeath := bo.infinityFactor * maxDegree

	g, ctx = errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := range batch.Complexes {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			K := batch.Complexes[i]

			if bo.storeGraphs {
				if err := storeGraph(opts, K, batch.NodeLabels, i, total); err != nil {
					return err
				}
			}

			dgms, err := persistence.CalculateDiagrams(K, persistence.WithDualize())
			if err != nil {
				return fmt.Errorf("graph %d: %w", i, err)
			}
			for _, d := range dgms {
				d.RemoveDiagonal()

				name := fmt.Sprintf("%s_d%d.txt", indexName(i, total), d.Dimension())
				if err := writeFile(opts.cfg.OutputDir, name, func(f *os.File) error {
					return graphio.WriteDiagram(f, d, unpairedDeath)
				}); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if batch.GraphLabels != nil {
		outputPath := filepath.Join(opts.cfg.OutputDir, "Labels.txt")
		log.Info("storing labels", zap.String("file", outputPath))
		if err := writeFile(opts.cfg.OutputDir, "Labels.txt", func(f *os.File) error {
			return graphio.WriteLabels(f, batch.GraphLabels)
		}); err != nil {
			return err
		}
	}

	return nil
}

// storeCloseness writes the closeness centrality column of one graph.
func storeCloseness(opts *rootOptions, K *core.Complex, i, total int) error {
	cc, err := matrix.ClosenessCentrality(K)
	if err != nil {
		return fmt.Errorf("graph %d: %w", i, err)
	}

	name := indexName(i, total) + "_closeness_centrality.txt"
	opts.logger.Debug("storing closeness centrality", zap.String("file", name))

	return writeFile(opts.cfg.OutputDir, name, func(f *os.File) error {
		return graphio.WriteValues(f, cc)
	})
}

// storeGraph writes one filtrated graph in GML format.
func storeGraph(opts *rootOptions, K *core.Complex, nodeLabels [][]string, i, total int) error {
	var labels []string
	if i < len(nodeLabels) {
		labels = nodeLabels[i]
	}

	name := indexName(i, total) + ".gml"
	opts.logger.Debug("storing graph", zap.String("file", name))

	return writeFile(opts.cfg.OutputDir, name, func(f *os.File) error {
		return graphio.WriteGML(f, K, labels)
	})
}

// writeFile creates dir/name and hands it to write, keeping the first error.
func writeFile(dir, name string, write func(*os.File) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// indexName zero-pads a graph index to the width of the batch size, so file
// listings sort naturally.
func indexName(i, total int) string {
	width := len(strconv.Itoa(total))

	return fmt.Sprintf("%0*d", width, i)
}
