// Package asserter is the assertion API the verify builders call into.
//
// Assertions are looked up by name. Every name comes in a pair, one for the
// affirmative check and one for its negation:
//   - Equal / NotEqual, EqualValues / NotEqualValues, InDelta / NotInDelta
//   - Contains / NotContains, ContainsFold / NotContainsFold, HasKey / NotHasKey
//   - Len / NotLen, StringLength / NotStringLength, Empty / NotEmpty
//   - Kind / NotKind, IsType / NotIsType, Implements / NotImplements
//   - JSONEq / NotJSONEq, YAMLEq / NotYAMLEq, MatchesSchema / NotMatchesSchema
//   - FileExists / NoFileExists, DirExists / NoDirExists, Readable / NotReadable
//
// Operands are passed with expected values first and the actual value last.
// The default implementation delegates to testify's assert package and adds
// the checks testify does not ship.
package asserter
