// Package analyze classifies registry members and decomposes their C types.
//
// Classification is a one-field look-back scan over the member sequence:
// a member whose name ends in "Count" measures the member declared right
// after it, which becomes an array. The pairing is positional; names are
// never compared.
//
// Key types:
//   - Role: Plain, Count, Array or Skip
//   - TypeDescriptor: the (prefix, base, suffix) split of a C type
//   - FieldSpec / StructSpec: classified members and structures
package analyze
