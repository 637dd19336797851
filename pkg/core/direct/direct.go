// Package direct holds the hash side of the hybrid index: an unordered
// key -> value map with O(1) average operations.
package direct

type Index[K comparable, V any] struct {
	m map[K]V
}

func New[K comparable, V any](sizeHint int) *Index[K, V] {
	return &Index[K, V]{m: make(map[K]V, sizeHint)}
}

// Put inserts or overwrites the value for key.
func (d *Index[K, V]) Put(key K, val V) {
	d.m[key] = val
}

func (d *Index[K, V]) Get(key K) (V, bool) {
	v, ok := d.m[key]
	return v, ok
}

// Remove is a no-op when key is absent.
func (d *Index[K, V]) Remove(key K) {
	delete(d.m, key)
}

func (d *Index[K, V]) Len() int {
	return len(d.m)
}

// Range calls fn for every entry in unspecified order until fn returns false.
func (d *Index[K, V]) Range(fn func(key K, val V) bool) {
	for k, v := range d.m {
		if !fn(k, v) {
			return
		}
	}
}
