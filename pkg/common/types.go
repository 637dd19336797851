package common

import "fmt"

// KeyType is the product ID used by the CLI and the snapshot store.
type KeyType int64

// ValueType is an encoded value as it sits in the snapshot store.
type ValueType []byte

// Record is the encoded unit written to and read from a Backend.
type Record struct {
	Key   KeyType
	Value ValueType
}

// Product is the retail payload stored against a KeyType. The index never
// looks inside it.
type Product struct {
	Name  string `json:"name" bson:"name" yaml:"name"`
	Price int    `json:"price" bson:"price" yaml:"price"`
	Stock int    `json:"stock" bson:"stock" yaml:"stock"`
}

func (p Product) String() string {
	return fmt.Sprintf("{name: %s, price: %d, stock: %d}", p.Name, p.Price, p.Stock)
}
