package core

import (
	"iter"
	"log/slog"

	"github.com/samber/mo"
	"golang.org/x/exp/constraints"

	"retaildb/pkg/config"
	"retaildb/pkg/core/direct"
	"retaildb/pkg/core/ordered"
	"retaildb/pkg/logging"
	"retaildb/pkg/monitor"
)

// HybridIndex keeps every record in two places: a hash map for point lookups
// and an ordered index for sorted traversal. Both hold the same key set and
// the same values after every public call returns.
//
// HybridIndex is not safe for concurrent use. Callers sharing one across
// goroutines must guard it with a single lock, since a mutation touches both
// sides.
type HybridIndex[K constraints.Ordered, V any] struct {
	direct  *direct.Index[K, V]
	ordered ordered.Index[K, V]
	stats   *monitor.WorkloadStats
	logger  *slog.Logger
	conf    config.IndexConfig
}

// Stats describes the current shape of the index.
type Stats struct {
	Records     int              `json:"records"`
	OrderedKind string           `json:"ordered_kind"`
	TreeHeight  int              `json:"tree_height,omitempty"` // bst only
	FallbackOn  bool             `json:"fallback_search"`
	Workload    monitor.Snapshot `json:"workload"`
}

// NewHybridIndex builds an index from cfg. A nil logger discards output.
func NewHybridIndex[K constraints.Ordered, V any](cfg config.IndexConfig, logger *slog.Logger) (*HybridIndex[K, V], error) {
	tree, err := ordered.New[K, V](cfg.Ordered, cfg.BTreeDegree)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &HybridIndex[K, V]{
		direct:  direct.New[K, V](0),
		ordered: tree,
		stats:   monitor.NewWorkloadStats(),
		logger:  logger,
		conf:    cfg,
	}, nil
}

// New returns an index over an unbalanced BST with fallback search enabled.
func New[K constraints.Ordered, V any]() *HybridIndex[K, V] {
	return &HybridIndex[K, V]{
		direct:  direct.New[K, V](0),
		ordered: ordered.NewBST[K, V](),
		stats:   monitor.NewWorkloadStats(),
		logger:  logging.Discard(),
		conf:    config.Default().Index,
	}
}

// Insert adds key or overwrites its value in both indexes.
func (hi *HybridIndex[K, V]) Insert(key K, val V) {
	hi.stats.RecordInsert()
	hi.direct.Put(key, val)
	hi.ordered.Put(key, val)
	hi.logger.Debug("insert", "key", key)
	hi.verify("insert", key)
}

// Search looks key up in the direct index. On a miss, and when fallback
// search is enabled, the ordered index is consulted before reporting absent.
// A fallback hit means the indexes have diverged; it is counted and logged.
func (hi *HybridIndex[K, V]) Search(key K) (V, bool) {
	hi.stats.RecordRead()
	if val, ok := hi.direct.Get(key); ok {
		hi.stats.RecordHit()
		return val, true
	}
	if hi.conf.FallbackSearch {
		if val, ok := hi.ordered.Get(key); ok {
			hi.stats.RecordFallback()
			hi.logger.Warn("direct index miss served by ordered index", "key", key)
			return val, true
		}
	}
	hi.stats.RecordMiss()
	var zero V
	return zero, false
}

// Lookup is Search returning an option.
func (hi *HybridIndex[K, V]) Lookup(key K) mo.Option[V] {
	if val, ok := hi.Search(key); ok {
		return mo.Some(val)
	}
	return mo.None[V]()
}

// Delete removes key from both indexes. Missing keys are ignored.
func (hi *HybridIndex[K, V]) Delete(key K) {
	hi.stats.RecordDelete()
	hi.direct.Remove(key)
	hi.ordered.Delete(key)
	hi.logger.Debug("delete", "key", key)
	hi.verify("delete", key)
}

// SortedPairs yields all records in ascending key order. The index must not
// be mutated while the sequence is being ranged.
func (hi *HybridIndex[K, V]) SortedPairs() iter.Seq2[K, V] {
	return hi.ordered.All()
}

func (hi *HybridIndex[K, V]) Len() int {
	return hi.direct.Len()
}

// Empty returns a new, empty index with the same configuration and logger.
func (hi *HybridIndex[K, V]) Empty() (*HybridIndex[K, V], error) {
	return NewHybridIndex[K, V](hi.conf, hi.logger)
}

// Adopt replaces the records of hi with those of src and clears the workload
// counters. src must not be used afterwards.
func (hi *HybridIndex[K, V]) Adopt(src *HybridIndex[K, V]) {
	hi.direct = src.direct
	hi.ordered = src.ordered
	hi.stats = monitor.NewWorkloadStats()
	src.direct, src.ordered = nil, nil
}

// Reset drops every record and clears the workload counters.
func (hi *HybridIndex[K, V]) Reset() error {
	fresh, err := hi.Empty()
	if err != nil {
		return err
	}
	hi.Adopt(fresh)
	hi.logger.Info("index reset")
	return nil
}

func (hi *HybridIndex[K, V]) Stats() Stats {
	st := Stats{
		Records:     hi.direct.Len(),
		OrderedKind: ordered.KindBTree,
		FallbackOn:  hi.conf.FallbackSearch,
		Workload:    hi.stats.Snapshot(),
	}
	if bst, ok := hi.ordered.(*ordered.BST[K, V]); ok {
		st.OrderedKind = ordered.KindBST
		st.TreeHeight = bst.Height()
	}
	return st
}

func (hi *HybridIndex[K, V]) verify(op string, key K) {
	if !hi.conf.VerifyWrites {
		return
	}
	if err := hi.Check(); err != nil {
		hi.logger.Error("index invariant violated", "op", op, "key", key, "err", err)
	}
}
