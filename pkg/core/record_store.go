package core

import (
	"classroom/pkg/common"
	"classroom/pkg/config"
	"classroom/pkg/core/memory"
	"classroom/pkg/monitor"

	"go.uber.org/zap"
)

type group struct {
	seq     int
	records []common.Record
}

// RecordStore keeps every inserted record plus one synthetic group of
// GroupSize records per distinct name key. Age queries read the groups,
// not the inserted records.
type RecordStore struct {
	all       []common.Record
	groups    map[common.NameKey]*group
	order     []common.NameKey
	ages      Index
	gen       *Generator
	groupSize int
	stats     *monitor.QueryStats
	logger    *zap.Logger
}

type Option func(*RecordStore)

func WithLogger(l *zap.Logger) Option {
	return func(rs *RecordStore) {
		if l != nil {
			rs.logger = l
		}
	}
}

// WithGenerator replaces the generator used to fill new groups.
func WithGenerator(g *Generator) Option {
	return func(rs *RecordStore) {
		if g != nil {
			rs.gen = g
		}
	}
}

func NewRecordStore(cfg *config.Config, opts ...Option) *RecordStore {
	if cfg == nil {
		cfg = config.Default()
	}
	groupSize := cfg.Store.GroupSize
	if groupSize <= 0 {
		groupSize = 3
	}
	degree := cfg.Store.BTreeDegree
	if degree < 2 {
		degree = 32
	}

	rs := &RecordStore{
		groups:    make(map[common.NameKey]*group),
		ages:      memory.NewAgeTable(degree),
		gen:       NewGenerator(cfg.Generator.Seed, cfg.Generator.MinAge, cfg.Generator.MaxAge),
		groupSize: groupSize,
		stats:     monitor.NewQueryStats(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// AddRange appends records in order and creates a group for every key seen
// for the first time. Existing groups are never regenerated.
func (rs *RecordStore) AddRange(records []common.Record) {
	rs.all = append(rs.all, records...)
	rs.stats.RecordInsert(len(records))

	created := 0
	for _, r := range records {
		key := common.KeyOf(r)
		if _, ok := rs.groups[key]; ok {
			continue
		}
		g := &group{
			seq:     len(rs.order),
			records: rs.gen.Sequence(rs.groupSize),
		}
		rs.groups[key] = g
		rs.order = append(rs.order, key)
		rs.ages.PutGroup(g.seq, g.records)
		created++
	}

	rs.logger.Debug("records added",
		zap.Int("inserted", len(records)),
		zap.Int("groups_created", created),
		zap.Int("groups_total", len(rs.order)))
}

// FindByName returns the group for (firstName, lastName). ok is false when
// the key was never inserted.
func (rs *RecordStore) FindByName(firstName, lastName string) ([]common.Record, bool) {
	g, ok := rs.groups[common.NameKey{First: firstName, Last: lastName}]
	rs.stats.RecordLookup(ok)
	if !ok {
		return nil, false
	}
	out := make([]common.Record, len(g.records))
	copy(out, g.records)
	return out, true
}

// FindByAge returns all group records with the given age, ordered by key
// insertion and then by position inside the group.
func (rs *RecordStore) FindByAge(age int) []common.Record {
	rs.stats.RecordAgeScan()
	return rs.ages.Lookup(age)
}

// AgeHistogram counts group records per age.
func (rs *RecordStore) AgeHistogram() map[int]int {
	hist := make(map[int]int)
	rs.ages.Ascend(func(r common.Record) bool {
		hist[r.Age]++
		return true
	})
	return hist
}

func (rs *RecordStore) Len() int {
	return len(rs.all)
}

func (rs *RecordStore) GroupCount() int {
	return len(rs.order)
}

func (rs *RecordStore) GroupSize() int {
	return rs.groupSize
}

func (rs *RecordStore) Records() []common.Record {
	out := make([]common.Record, len(rs.all))
	copy(out, rs.all)
	return out
}

// Keys returns the group keys in insertion order.
func (rs *RecordStore) Keys() []common.NameKey {
	out := make([]common.NameKey, len(rs.order))
	copy(out, rs.order)
	return out
}

func (rs *RecordStore) Stats() map[string]interface{} {
	return map[string]interface{}{
		"record_count":   len(rs.all),
		"group_count":    len(rs.order),
		"group_size":     rs.groupSize,
		"indexed_count":  rs.ages.Size(),
		"index_type":     rs.ages.Type(),
		"name_lookups":   rs.stats.Lookups(),
		"name_misses":    rs.stats.Misses(),
		"name_hit_ratio": rs.stats.GetHitRatio(),
		"age_scans":      rs.stats.Scans(),
	}
}
