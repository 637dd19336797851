package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"retaildb/pkg/codec"
	"retaildb/pkg/common"
	"retaildb/pkg/storage"
)

const Prompt = "retail> "

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Interactive shell over an empty product index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shop, err := newShop()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "retailctl %s (index: %s). Type 'help' for commands.\n",
				rootCmd.Version, cfg.Index.Ordered)
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), shop, cfg.Storage.Path, cfg.Storage.Codec)
		},
	})
}

type repl struct {
	out       io.Writer
	shop      *shopIndex
	snapPath  string
	codecName string
}

func runREPL(in io.Reader, out io.Writer, shop *shopIndex, snapPath, codecName string) error {
	r := &repl{out: out, shop: shop, snapPath: snapPath, codecName: codecName}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "put", "set":
			r.handlePut(parts)
		case "get":
			r.handleGet(parts)
		case "del", "rm":
			r.handleDel(parts)
		case "list", "ls":
			r.handleList(parts)
		case "save":
			r.handleSave(parts)
		case "load":
			r.handleLoad(parts)
		case "stats":
			r.handleStats()
		case "check":
			r.handleCheck()
		case "help":
			r.printHelp()
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return nil
		default:
			fmt.Fprintf(out, "Unknown command: '%s'. Type 'help'.\n", cmd)
		}
	}
	return scanner.Err()
}

func parseID(s string) (common.KeyType, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New("product ID must be an integer (e.g., 101)")
	}
	return common.KeyType(id), nil
}

func (r *repl) handlePut(parts []string) {
	if len(parts) < 5 {
		fmt.Fprintln(r.out, "Usage: put <id> <name> <price> <stock>")
		return
	}

	id, err := parseID(parts[1])
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	price, err1 := strconv.Atoi(parts[len(parts)-2])
	stock, err2 := strconv.Atoi(parts[len(parts)-1])
	if err1 != nil || err2 != nil {
		fmt.Fprintln(r.out, "Error: price and stock must be integers")
		return
	}
	name := strings.Join(parts[2:len(parts)-2], " ")

	start := time.Now()
	r.shop.Insert(id, common.Product{Name: name, Price: price, Stock: stock})
	fmt.Fprintf(r.out, "OK (%v)\n", time.Since(start))
}

func (r *repl) handleGet(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(r.out, "Usage: get <id>")
		return
	}

	id, err := parseID(parts[1])
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}

	start := time.Now()
	p, ok := r.shop.Search(id)
	duration := time.Since(start)

	if !ok {
		fmt.Fprintf(r.out, "Not found (%v)\n", duration)
		return
	}
	fmt.Fprintf(r.out, "%s (%v)\n", p, duration)
}

func (r *repl) handleDel(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(r.out, "Usage: del <id>")
		return
	}

	id, err := parseID(parts[1])
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}

	start := time.Now()
	r.shop.Delete(id)
	fmt.Fprintf(r.out, "Deleted (%v)\n", time.Since(start))
}

func (r *repl) handleList(parts []string) {
	limit := 20
	if len(parts) >= 2 {
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Fprintln(r.out, "Usage: list [limit]")
			return
		}
		limit = n
	}
	fmt.Fprintf(r.out, "%d products:\n", r.shop.Len())
	printSorted(r.out, r.shop, limit)
}

// openSnapshot opens the backend named in parts, or the configured one. With
// mustExist set a missing file is an error instead of a new empty snapshot.
func (r *repl) openSnapshot(parts []string, mustExist bool) (*storage.SQLiteBackend, codec.Codec[common.Product], error) {
	path := r.snapPath
	if len(parts) >= 2 {
		path = parts[1]
	}
	c, err := codec.ByName[common.Product](r.codecName)
	if err != nil {
		return nil, c, err
	}
	if mustExist {
		if _, err := os.Stat(path); err != nil {
			return nil, c, fmt.Errorf("snapshot %s: %w", path, err)
		}
	}
	b, err := storage.NewSQLiteBackend(path)
	return b, c, err
}

func (r *repl) handleSave(parts []string) {
	b, c, err := r.openSnapshot(parts, false)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	defer b.Close()

	n, err := storage.SaveSnapshot(b, r.shop, c)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Saved %d products (%s)\n", n, c.Tag())
}

// handleLoad stages the snapshot in an empty index and only swaps it in once
// every record has decoded, so a failed load leaves the shop untouched.
func (r *repl) handleLoad(parts []string) {
	b, c, err := r.openSnapshot(parts, true)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	defer b.Close()

	staged, err := r.shop.Empty()
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	n, err := storage.LoadSnapshot(b, staged, c)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	r.shop.Adopt(staged)
	fmt.Fprintf(r.out, "Loaded %d products (%s)\n", n, c.Tag())
}

func (r *repl) handleStats() {
	data, err := json.MarshalIndent(r.shop.Stats(), "", "  ")
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, string(data))
}

func (r *repl) handleCheck() {
	if err := r.shop.Check(); err != nil {
		fmt.Fprintf(r.out, "FAILED: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, "OK: indexes in sync and ordered")
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, `
Commands:
  put <id> <name> <price> <stock>   Insert/Update product
  get <id>                          Look up product
  del <id>                          Delete product
  list [limit]                      Products in ID order (default 20)
  save [path]                       Export snapshot to SQLite
  load [path]                       Replace index with snapshot
  stats                             Index statistics
  check                             Verify index invariants
  exit                              Exit shell
	`)
}
