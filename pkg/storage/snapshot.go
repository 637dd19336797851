package storage

import (
	"fmt"

	"retaildb/pkg/codec"
	"retaildb/pkg/common"
	"retaildb/pkg/core"
)

// SaveSnapshot writes every record of idx to b, replacing what b held, and
// returns the number of records written. It is an explicit export; the index
// never writes on its own.
func SaveSnapshot[V any](b Backend, idx *core.HybridIndex[common.KeyType, V], c codec.Codec[V]) (int, error) {
	records := make([]common.Record, 0, idx.Len())
	for k, v := range idx.SortedPairs() {
		data, err := c.Encode(v)
		if err != nil {
			return 0, fmt.Errorf("snapshot: encode key %d: %w", k, err)
		}
		records = append(records, common.Record{Key: k, Value: data})
	}

	if err := b.Replace(records); err != nil {
		return 0, fmt.Errorf("snapshot: write: %w", err)
	}
	return len(records), nil
}

// LoadSnapshot inserts every record stored in b into idx. Existing keys are
// overwritten; keys not in the snapshot are left alone. Nothing is inserted
// if any record fails to decode.
func LoadSnapshot[V any](b Backend, idx *core.HybridIndex[common.KeyType, V], c codec.Codec[V]) (int, error) {
	records, err := b.LoadAll()
	if err != nil {
		return 0, fmt.Errorf("snapshot: read: %w", err)
	}

	values := make([]V, len(records))
	for i, rec := range records {
		v, err := c.Decode(rec.Value)
		if err != nil {
			return 0, fmt.Errorf("snapshot: decode key %d: %w", rec.Key, err)
		}
		values[i] = v
	}

	for i, rec := range records {
		idx.Insert(rec.Key, values[i])
	}
	return len(records), nil
}
