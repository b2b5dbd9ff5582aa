// Package valibot provides:
//
//   - A schema protocol (Schema[O]/AsyncParser[O]) shared by every schema
//     kind, sync and async.
//   - A pipe engine: an ordered list of post-type-check Actions that
//     validate or transform a successfully type-checked value.
//   - An issue and path model: structured failures with a navigable,
//     typed path from the root input to the offending leaf.
//   - A Result[T] tagged union used by every parse instead of a bare error.
//
// Design policy:
//   - Keep the protocol, pipe engine, and issue/path model in the root
//     package; put concrete schema kinds under dsl/ and leaf validators
//     under rules/.
//   - Schemas are immutable once constructed and may be parsed from
//     multiple goroutines concurrently; the only internal state any schema
//     may hold is a once-computed memoization of its own structural
//     decomposition (the resolved inner schema of dsl.Recursive).
//
// Typical usage:
//
//	s := dsl.Object([]dsl.Field{
//		dsl.F("name", dsl.String()),
//		dsl.F("age", dsl.Number()),
//	})
//	v, err := valibot.Parse(s, input)
package valibot
