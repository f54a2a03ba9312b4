// Package cmap provides a concurrent map implementation for Chankey.
//
// This package implements a sharded concurrent map used for
// per-client state such as rate limiters:
//
//   - Sharding: Configurable shard count for parallelism
//   - Fine-grained Locking: Per-shard RWMutex for minimal contention
//   - Iteration: Safe iteration while holding read locks
//
// Usage:
//
//	m := cmap.New[string, *rate.Limiter]()
//	m.Set("203.0.113.9", limiter)
//	val, ok := m.Get("203.0.113.9")
//
// Thread Safety:
//
// All operations are thread-safe. Read operations (Get, Has) use RLock,
// write operations (Set, Delete) use Lock.
package cmap
