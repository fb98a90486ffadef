package core

import (
	"classroom/pkg/common"
	"math/rand"
	"time"
)

var (
	firstNames = []string{
		"Oliver", "Harry", "Jack", "George", "Noah",
		"Charlie", "Jacob", "Alfie", "Freddie",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller",
	}
)

// Generator produces synthetic person records from fixed name pools.
// It is not safe for concurrent use.
type Generator struct {
	rnd    *rand.Rand
	minAge int
	maxAge int
}

// NewGenerator returns a generator drawing ages from [minAge, maxAge).
// A zero seed seeds from the clock.
func NewGenerator(seed int64, minAge, maxAge int) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if maxAge <= minAge {
		maxAge = minAge + 1
	}
	return &Generator{
		rnd:    rand.New(rand.NewSource(seed)),
		minAge: minAge,
		maxAge: maxAge,
	}
}

func (g *Generator) Next() common.Record {
	return common.Record{
		FirstName: firstNames[g.rnd.Intn(len(firstNames))],
		LastName:  lastNames[g.rnd.Intn(len(lastNames))],
		Age:       g.minAge + g.rnd.Intn(g.maxAge-g.minAge),
	}
}

func (g *Generator) Sequence(count int) []common.Record {
	if count <= 0 {
		return []common.Record{}
	}
	out := make([]common.Record, count)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// NameCombinations is the number of distinct keys the pools can produce.
func NameCombinations() int {
	return len(firstNames) * len(lastNames)
}
