package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"retaildb/pkg/common"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Run the sample shop: insert, search, list, delete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shop, err := newShop()
			if err != nil {
				return err
			}
			runDemo(cmd.OutOrStdout(), shop)
			return nil
		},
	})
}

func runDemo(w io.Writer, shop *shopIndex) {
	shop.Insert(101, common.Product{Name: "Laptop", Price: 1500, Stock: 10})
	shop.Insert(102, common.Product{Name: "Phone", Price: 800, Stock: 20})
	shop.Insert(103, common.Product{Name: "Tablet", Price: 500, Stock: 15})

	fmt.Fprintln(w, "Searching for Product ID 102:")
	printSearch(w, shop, 102)

	fmt.Fprintln(w, "\nSearching for Product ID 200:")
	printSearch(w, shop, 200)

	fmt.Fprintln(w, "\nProducts in sorted order:")
	printSorted(w, shop, 0)

	fmt.Fprintln(w, "\nDeleting Product ID 102...")
	shop.Delete(102)

	fmt.Fprintln(w, "\nAfter deletion, products in sorted order:")
	printSorted(w, shop, 0)
}

func printSearch(w io.Writer, shop *shopIndex, id common.KeyType) {
	if p, ok := shop.Search(id); ok {
		fmt.Fprintln(w, p)
	} else {
		fmt.Fprintln(w, "not found")
	}
}

// printSorted lists products in ID order. limit <= 0 prints everything.
func printSorted(w io.Writer, shop *shopIndex, limit int) {
	count := 0
	for id, p := range shop.SortedPairs() {
		if limit > 0 && count >= limit {
			fmt.Fprintf(w, "... and %d more\n", shop.Len()-limit)
			break
		}
		fmt.Fprintf(w, "Product ID: %d, Details: %s\n", id, p)
		count++
	}
}
