package monitor

import (
	"sync/atomic"
)

type WorkloadStats struct {
	InsertCount   uint64
	DeleteCount   uint64
	ReadCount     uint64
	HitCount      uint64 // served by the direct index
	FallbackCount uint64 // missed the direct index, found in the tree
	MissCount     uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Inserts      uint64  `json:"inserts"`
	Deletes      uint64  `json:"deletes"`
	Reads        uint64  `json:"reads"`
	Hits         uint64  `json:"hits"`
	FallbackHits uint64  `json:"fallback_hits"`
	Misses       uint64  `json:"misses"`
	RWRatio      float64 `json:"rw_ratio"`
}

func NewWorkloadStats() *WorkloadStats {
	return &WorkloadStats{}
}

func (ws *WorkloadStats) RecordInsert() {
	atomic.AddUint64(&ws.InsertCount, 1)
}

func (ws *WorkloadStats) RecordDelete() {
	atomic.AddUint64(&ws.DeleteCount, 1)
}

func (ws *WorkloadStats) RecordRead() {
	atomic.AddUint64(&ws.ReadCount, 1)
}

func (ws *WorkloadStats) RecordHit() {
	atomic.AddUint64(&ws.HitCount, 1)
}

func (ws *WorkloadStats) RecordFallback() {
	atomic.AddUint64(&ws.FallbackCount, 1)
}

func (ws *WorkloadStats) RecordMiss() {
	atomic.AddUint64(&ws.MissCount, 1)
}

// GetReadWriteRatio treats inserts and deletes as writes.
func (ws *WorkloadStats) GetReadWriteRatio() float64 {
	reads := atomic.LoadUint64(&ws.ReadCount)
	writes := atomic.LoadUint64(&ws.InsertCount) + atomic.LoadUint64(&ws.DeleteCount)

	if writes == 0 {
		if reads > 0 {
			return 100.0
		}
		return 0.0
	}
	return float64(reads) / float64(writes)
}

func (ws *WorkloadStats) Snapshot() Snapshot {
	return Snapshot{
		Inserts:      atomic.LoadUint64(&ws.InsertCount),
		Deletes:      atomic.LoadUint64(&ws.DeleteCount),
		Reads:        atomic.LoadUint64(&ws.ReadCount),
		Hits:         atomic.LoadUint64(&ws.HitCount),
		FallbackHits: atomic.LoadUint64(&ws.FallbackCount),
		Misses:       atomic.LoadUint64(&ws.MissCount),
		RWRatio:      ws.GetReadWriteRatio(),
	}
}
