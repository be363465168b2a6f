// Package kernel provides core domain primitives for the deliveries system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - OrderID: a value object for the caller-supplied unique order identifier
//   - AccessWindow: a value object for the [start, end) delivery access interval
//   - Recipient: a value object describing the delivery recipient
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
