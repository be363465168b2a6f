// Package delivery contains the delivery lifecycle engine: the Delivery
// aggregate, the derived lifecycle State, and the Transition descriptors for
// the guarded writes that move a record through its lifecycle.
//
// The engine is pure logic with no I/O. State is recomputed from the stored
// timestamps and an injected current time on every read; there is no stored
// state field. Transitions are expressed as predicates over the record's
// fields plus a single field assignment, and the storage adapter executes
// predicate and write as one atomic conditional operation. Correctness under
// concurrency rests entirely on that storage primitive, not on in-memory
// locks, so the design holds across multiple server processes.
package delivery
