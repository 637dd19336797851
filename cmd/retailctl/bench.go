package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"retaildb/pkg/common"
	"retaildb/pkg/config"
	"retaildb/pkg/core"
	"retaildb/pkg/core/ordered"
)

var (
	benchN    int
	benchSeed int64
)

func init() {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare bst and btree ordered indexes on sorted and shuffled input",
		Long: `The bench command inserts N products in ascending ID order and in a
shuffled order into each ordered index kind, then looks every one up again.
Sorted input turns the unbalanced bst into a linked list; watch the height.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), cfg.Index, benchN, benchSeed)
		},
	}
	cmd.Flags().IntVarP(&benchN, "n", "n", 5000, "Number of products per run")
	cmd.Flags().Int64Var(&benchSeed, "seed", 1, "Shuffle seed")
	rootCmd.AddCommand(cmd)
}

type benchResult struct {
	insert time.Duration
	search time.Duration
	height int
}

func runBench(w io.Writer, base config.IndexConfig, n int, seed int64) error {
	if n <= 0 {
		return fmt.Errorf("bench: n must be positive, got %d", n)
	}

	sorted := make([]common.KeyType, n)
	for i := range sorted {
		sorted[i] = common.KeyType(i + 1)
	}
	shuffled := append([]common.KeyType(nil), sorted...)
	rand.New(rand.NewSource(seed)).Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	fmt.Fprintf(w, "Hybrid Index Benchmark (N=%d)\n", n)
	fmt.Fprintln(w, "---------------------------------------------------")

	for _, kind := range []string{ordered.KindBST, ordered.KindBTree} {
		cfg := base
		cfg.Ordered = kind
		cfg.VerifyWrites = false

		for _, input := range []struct {
			name string
			keys []common.KeyType
		}{{"sorted", sorted}, {"shuffled", shuffled}} {
			res, err := benchOnce(cfg, input.keys)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, ">> %-5s %-8s insert: %v | search: %v | QPS: %.0f",
				kind, input.name, res.insert, res.search, qps(n, res.search))
			if kind == ordered.KindBST {
				fmt.Fprintf(w, " | height: %d", res.height)
			}
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, "---------------------------------------------------")
	return nil
}

// qps is zero when the clock did not advance.
func qps(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

func benchOnce(cfg config.IndexConfig, keys []common.KeyType) (benchResult, error) {
	idx, err := core.NewHybridIndex[common.KeyType, common.Product](cfg, nil)
	if err != nil {
		return benchResult{}, err
	}

	var res benchResult
	start := time.Now()
	for _, k := range keys {
		idx.Insert(k, common.Product{Name: "bench_item", Price: int(k), Stock: 1})
	}
	res.insert = time.Since(start)

	start = time.Now()
	for _, k := range keys {
		if _, ok := idx.Search(k); !ok {
			return res, fmt.Errorf("bench: key %d lost", k)
		}
	}
	res.search = time.Since(start)
	res.height = idx.Stats().TreeHeight
	return res, nil
}
