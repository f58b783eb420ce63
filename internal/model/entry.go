// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Entry, the canonical form of a single registry record.

package model

import (
	"fmt"

	"github.com/vk/registrygen/pkg/nsid"
)

// MaxEntries is the largest registry an ordinal of type uint16 can address.
const MaxEntries = 1 << 16

// Entry is one validated registry record.
type Entry struct {
	// Ordinal is the zero-based position of the record in its document.
	Ordinal uint16
	// Name is the record's `name` exactly as declared.
	Name string
	// Ident is the exported Go identifier derived from Name.
	Ident string
	// Key is the parsed `id`. Key.String() returns the original text.
	Key nsid.ID
}

// String returns a debug representation of the entry.
func (e Entry) String() string {
	return fmt.Sprintf("%s[%d]=%s", e.Ident, e.Ordinal, e.Key)
}
