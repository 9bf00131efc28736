// Package match provides identifier normalization, Levenshtein distance and
// candidate ranking used to suggest registry type names.
//
// When a member refers to a structure that is not part of the generated set
// (typically a typo in a hand-written registry or a structure filtered out by
// the selection), the resolver ranks the known structure names against it and
// reports the closest ones.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - NormalizeTypeName: additionally drops the namespace prefix and vendor suffix
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates / Suggest: rank known names against an unknown one
package match
