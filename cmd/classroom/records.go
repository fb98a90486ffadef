package main

import (
	"fmt"

	"classroom/pkg/core"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	recordCount int
	firstName   string
	lastName    string
	queryAge    int
	seed        int64
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Populate the grouped record store and print query result counts",
	Long: `Generates --count records, bulk-inserts them and prints two lines:
the size of the (--first, --last) group and the number of group records of
age --age. A missing name group prints "not found".`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&recordCount, "count", 0, "Number of records to generate (default from config)")
	recordsCmd.Flags().StringVar(&firstName, "first", "", "First name to look up (default from config)")
	recordsCmd.Flags().StringVar(&lastName, "last", "", "Last name to look up (default from config)")
	recordsCmd.Flags().IntVar(&queryAge, "age", 0, "Age to scan for (default from config)")
	recordsCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default from config, 0 = clock)")
}

func runRecords(cmd *cobra.Command, args []string) error {
	demo := cfg.Demo
	gen := cfg.Generator
	flags := cmd.Flags()
	if flags.Changed("count") {
		demo.RecordCount = recordCount
	}
	if flags.Changed("first") {
		demo.FirstName = firstName
	}
	if flags.Changed("last") {
		demo.LastName = lastName
	}
	if flags.Changed("age") {
		demo.Age = queryAge
	}
	if flags.Changed("seed") {
		gen.Seed = seed
	}
	if demo.RecordCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", demo.RecordCount)
	}

	storeCfg := *cfg
	storeCfg.Generator = gen
	generator := core.NewGenerator(gen.Seed, gen.MinAge, gen.MaxAge)
	store := core.NewRecordStore(&storeCfg,
		core.WithGenerator(generator),
		core.WithLogger(logger.Named("records")))
	store.AddRange(generator.Sequence(demo.RecordCount))

	out := cmd.OutOrStdout()
	if items, ok := store.FindByName(demo.FirstName, demo.LastName); ok {
		fmt.Fprintln(out, len(items))
	} else {
		fmt.Fprintf(out, "%s %s not found\n", demo.FirstName, demo.LastName)
	}
	fmt.Fprintln(out, len(store.FindByAge(demo.Age)))

	logger.Debug("record store stats", zap.Any("stats", store.Stats()))
	return nil
}
