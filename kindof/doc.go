// Package kindof provides runtime kind discrimination for values crossing
// a dynamic boundary, such as deserialized documents or any-typed trees.
//
// Internal code with static types does not need these checks; they exist
// for the places where the type is genuinely unknown at compile time.
package kindof
