// Package registries holds the process-wide sinks that generated registry
// types populate during package initialization.
//
// Each generated package calls RegisterAll against the sink returned by For,
// inserting its values in ordinal order. A sink maps an nsid.ID back to the
// value that owns it, so runtime code can resolve keys without consulting the
// ordinal table of any particular generated type.
//
// Sinks are write-once per key and have no removal API.
package registries
