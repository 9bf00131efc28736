// Package plan resolves classified structures into their builder form.
//
// Resolution runs in two passes separated by a hard barrier:
//  1. BuildNameTable derives the builder name of every qualifying structure
//     and freezes the native -> builder mapping in an immutable NameTable.
//  2. Resolver.Resolve derives, per member, the builder field name and the
//     SurfaceType, looking nested structure references up in the table.
//
// No structure can be resolved before the table is complete: a member of the
// first structure may refer to the last one.
package plan
