package ddd

import (
	"hash/maphash"
	"reflect"
)

// hashSeed is the process-wide seed for all identity and component hashing.
// Hash codes are stable within a process run, not across runs.
var hashSeed = maphash.MakeSeed()

const (
	// FNV-1a constants, used for order-sensitive hash accumulation.
	hashOffset uint64 = 14695981039346656037
	hashPrime  uint64 = 1099511628211
)

// typeHash returns a process-stable hash discriminating the concrete type T,
// mixed into entity hash codes so entities of unrelated types with equal
// identifier values do not hash alike.
func typeHash[T any]() uint64 {
	return maphash.Comparable(hashSeed, reflect.TypeOf((*T)(nil)))
}

// combineHash folds the next component hash into an order-sensitive
// accumulator, so permuted sequences do not collide with the original.
func combineHash(acc, next uint64) uint64 {
	return (acc ^ next) * hashPrime
}
