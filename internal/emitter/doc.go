// Package emitter renders a built registry model into a single Go source file
// that declares a closed set of values with O(1) lookup by ordinal and by key.
//
// Rendering is split into two units that are tested on their own:
// orderEntries fixes the declaration order (ascending ordinal, contiguous from
// zero) and the template turns the ordered entries into source text. The
// output carries no timestamps, so rendering the same model twice yields
// byte-identical files.
package emitter
