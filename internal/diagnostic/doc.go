// Package diagnostic provides structured warnings, errors, and
// informational notes collected while resolving registry structures.
//
// Key capabilities:
//   - Builder name collisions (last-wins warnings)
//   - Unresolved structure references with "did you mean" suggestions
//   - Count fields that are not followed by the array they measure
package diagnostic
