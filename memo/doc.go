// Package memo provides function memoization with deterministic key
// derivation.
//
// A Memoizer wraps a target function and caches its results in an
// instance-scoped, unbounded store keyed by a derived identity of the
// arguments. The store is exposed for inspection and manual invalidation.
// An optional single-flight mode collapses concurrent calls for the same
// key into one evaluation.
package memo
