/*
Package nsid provides the namespaced identifier used as the key of every
generated registry value.

The canonical format is `namespace:path`, e.g. `minecraft:flame`. The
namespace may contain lower-case letters, digits, `_`, `-` and `.`; the path
may additionally contain `/`.

An ID is a small comparable value, so it can be used directly as a map key.
The string it was parsed from is never reformatted: String() returns exactly
what Parse accepted.
*/
package nsid
