package monitor

import (
	"sync/atomic"
)

// QueryStats counts store queries.
type QueryStats struct {
	NameLookups uint64
	NameHits    uint64
	AgeScans    uint64
	Inserts     uint64
}

func NewQueryStats() *QueryStats {
	return &QueryStats{}
}

func (qs *QueryStats) RecordInsert(n int) {
	atomic.AddUint64(&qs.Inserts, uint64(n))
}

func (qs *QueryStats) RecordLookup(hit bool) {
	atomic.AddUint64(&qs.NameLookups, 1)
	if hit {
		atomic.AddUint64(&qs.NameHits, 1)
	}
}

func (qs *QueryStats) RecordAgeScan() {
	atomic.AddUint64(&qs.AgeScans, 1)
}

func (qs *QueryStats) Lookups() uint64 {
	return atomic.LoadUint64(&qs.NameLookups)
}

func (qs *QueryStats) Scans() uint64 {
	return atomic.LoadUint64(&qs.AgeScans)
}

func (qs *QueryStats) Misses() uint64 {
	return atomic.LoadUint64(&qs.NameLookups) - atomic.LoadUint64(&qs.NameHits)
}

// GetHitRatio reports the fraction of name lookups that found a group.
func (qs *QueryStats) GetHitRatio() float64 {
	lookups := atomic.LoadUint64(&qs.NameLookups)
	if lookups == 0 {
		return 0.0
	}
	return float64(atomic.LoadUint64(&qs.NameHits)) / float64(lookups)
}
