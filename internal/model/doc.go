// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model builds the canonical, in-memory representation of a registry
// document: an ordered list of entries, each carrying a stable ordinal, the
// name it was declared with, the Go identifier derived from that name and its
// parsed namespaced key.
//
// # Ordinals
//
// An entry's ordinal is exactly its zero-based position in the document. It
// never depends on the content of `name` or `id`, so reordering the document
// is the only way to change an ordinal. Ordinals are uint16, which caps a
// registry at 65536 entries.
//
// # Validation
//
// Build rejects the whole document on the first problem it finds: a repeated
// name, a name that cannot become a Go identifier, two names that collapse to
// the same identifier, an unparsable key, or a key used twice. No partial
// model is ever returned.
//
// The result is immutable by convention and is handed as-is to the emitter.
package model
