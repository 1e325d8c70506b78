// Package attribute reads named attributes of test subjects, including
// unexported fields and fields promoted from embedded structs.
//
// A subject is either:
//   - a struct value or pointer to a struct, whose fields are walked
//     breadth-first through embedded structs (most-derived first)
//   - a map with string keys, whose keys act as dynamic attributes
//   - a class name: a string naming a type registered with Register or
//     RegisterAs, whose static attributes are package-level variables
//
// Reads never modify the subject. This package bypasses Go's visibility
// rules and is meant for test support code only.
package attribute
