package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"classroom/pkg/common"
	"classroom/pkg/config"
	"classroom/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommands(t *testing.T) {
	c := config.Default()
	c.Generator.Seed = 2
	store := core.NewRecordStore(c)
	store.AddRange([]common.Record{{FirstName: "Jack", LastName: "Jones", Age: 30}})

	in := strings.NewReader("name Jack Jones\nname NoSuch Person\nage x\nbogus\nstats\nexit\nname Jack Jones\n")
	var out bytes.Buffer
	serve(store, in, &out)

	got := out.String()
	assert.Contains(t, got, "Found 3 records:\n")
	assert.Contains(t, got, "(not found)\n")
	assert.Contains(t, got, "Error: Age must be an integer\n")
	assert.Contains(t, got, "Unknown command: 'bogus'. Type 'help'.\n")
	assert.Contains(t, got, "group_count")
	assert.True(t, strings.HasSuffix(got, "Bye!\n"))
	assert.Equal(t, 1, strings.Count(got, "Found 3 records:"))
}

func TestServeAges(t *testing.T) {
	c := config.Default()
	c.Generator.Seed = 5
	store := core.NewRecordStore(c)
	store.AddRange([]common.Record{{FirstName: "Jack", LastName: "Jones"}})

	var out bytes.Buffer
	serve(store, strings.NewReader("ages\nexit\n"), &out)

	total := 0
	for age, n := range store.AgeHistogram() {
		assert.Contains(t, out.String(), fmt.Sprintf("  %3d %d\n", age, n))
		total += n
	}
	assert.Equal(t, 3, total)
}

func TestRunShellReadsStdin(t *testing.T) {
	cmd, buf := setup(t)
	cmd.Flags().IntVar(&recordCount, "count", 0, "")
	require.NoError(t, cmd.Flags().Set("count", "100"))
	cmd.SetIn(strings.NewReader("age 30\n"))

	require.NoError(t, runShell(cmd, nil))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Loaded 100 records into "))
	assert.Contains(t, out, Prompt+"Found ")
}
