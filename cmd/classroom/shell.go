package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"classroom/pkg/core"

	"github.com/spf13/cobra"
)

const Prompt = "classroom> "

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive queries against a populated record store",
	Long: `Populates a record store exactly like 'records' and then reads
commands from stdin:

  name <first> <last>    Print the group for a name
  age <n>                Print group records of the given age
  ages                   Print group record counts per age
  stats                  Print store counters
  exit                   Leave the shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().IntVar(&recordCount, "count", 0, "Number of records to generate (default from config)")
	shellCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default from config, 0 = clock)")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	gen := cfg.Generator
	count := cfg.Demo.RecordCount
	if cmd.Flags().Changed("count") {
		count = recordCount
	}
	if cmd.Flags().Changed("seed") {
		gen.Seed = seed
	}

	storeCfg := *cfg
	storeCfg.Generator = gen
	generator := core.NewGenerator(gen.Seed, gen.MinAge, gen.MaxAge)
	store := core.NewRecordStore(&storeCfg,
		core.WithGenerator(generator),
		core.WithLogger(logger.Named("shell")))
	store.AddRange(generator.Sequence(count))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d records into %d groups. Type 'help' for commands.\n", store.Len(), store.GroupCount())
	serve(store, cmd.InOrStdin(), out)
	return nil
}

func serve(store *core.RecordStore, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		switch strings.ToLower(parts[0]) {
		case "name":
			handleName(store, out, parts)
		case "age":
			handleAge(store, out, parts)
		case "ages":
			handleAges(store, out)
		case "stats":
			handleStats(store, out)
		case "help":
			printHelp(out)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintf(out, "Unknown command: '%s'. Type 'help'.\n", parts[0])
		}
	}
}

func handleName(store *core.RecordStore, out io.Writer, parts []string) {
	if len(parts) != 3 {
		fmt.Fprintln(out, "Usage: name <first> <last>")
		return
	}
	items, ok := store.FindByName(parts[1], parts[2])
	if !ok {
		fmt.Fprintln(out, "(not found)")
		return
	}
	fmt.Fprintf(out, "Found %d records:\n", len(items))
	for _, r := range items {
		fmt.Fprintf(out, "  %s\n", r)
	}
}

func handleAge(store *core.RecordStore, out io.Writer, parts []string) {
	if len(parts) != 2 {
		fmt.Fprintln(out, "Usage: age <n>")
		return
	}
	age, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Fprintln(out, "Error: Age must be an integer")
		return
	}
	items := store.FindByAge(age)
	fmt.Fprintf(out, "Found %d records:\n", len(items))
	for i, r := range items {
		if i >= 20 {
			fmt.Fprintf(out, "... and %d more\n", len(items)-20)
			break
		}
		fmt.Fprintf(out, "  %s\n", r)
	}
}

func handleAges(store *core.RecordStore, out io.Writer) {
	hist := store.AgeHistogram()
	ages := make([]int, 0, len(hist))
	for age := range hist {
		ages = append(ages, age)
	}
	sort.Ints(ages)
	for _, age := range ages {
		fmt.Fprintf(out, "  %3d %d\n", age, hist[age])
	}
}

func handleStats(store *core.RecordStore, out io.Writer) {
	stats := store.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %-15s %v\n", k, stats[k])
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `
Commands:
  name <first> <last>    Group lookup by name
  age <n>                Group records of that age
  ages                   Counts per age
  stats                  Store counters
  exit                   Exit shell
	`)
}
