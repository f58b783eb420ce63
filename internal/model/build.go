// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file turns raw registry records into the ordered entry list.

package model

import (
	"context"
	"fmt"

	"github.com/vk/registrygen/internal/ctxlog"
	"github.com/vk/registrygen/internal/generr"
	"github.com/vk/registrygen/internal/registrydoc"
	"github.com/vk/registrygen/pkg/nsid"
)

// Build assigns ordinals by document order and validates every record.
// Given the same records it always returns the same entries.
func Build(ctx context.Context, records []registrydoc.Record) ([]Entry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building registry model.", "records", len(records))

	if len(records) > MaxEntries {
		return nil, generr.Newf(generr.TooManyEntries, fmt.Sprint(len(records)), "ordinals are limited to %d entries", MaxEntries)
	}

	names := make(map[string]struct{}, len(records))
	idents := make(map[string]string, len(records))
	keys := make(map[nsid.ID]string, len(records))
	entries := make([]Entry, 0, len(records))

	for i, rec := range records {
		if _, seen := names[rec.Name]; seen {
			return nil, generr.New(generr.DuplicateEntry, rec.Name, nil)
		}
		names[rec.Name] = struct{}{}

		ident, err := GoIdent(rec.Name)
		if err != nil {
			return nil, generr.New(generr.InvalidName, rec.Name, err)
		}
		if other, taken := idents[ident]; taken {
			return nil, generr.Newf(generr.DuplicateEntry, rec.Name, "identifier %s is already used by %q", ident, other)
		}
		idents[ident] = rec.Name

		key, err := nsid.Parse(rec.ID)
		if err != nil {
			return nil, generr.New(generr.InvalidKey, rec.ID, err)
		}
		if other, taken := keys[key]; taken {
			return nil, generr.Newf(generr.DuplicateEntry, rec.ID, "key is already used by %q", other)
		}
		keys[key] = rec.Name

		entries = append(entries, Entry{
			Ordinal: uint16(i),
			Name:    rec.Name,
			Ident:   ident,
			Key:     key,
		})
	}

	logger.Debug("Registry model built.", "entries", len(entries))
	return entries, nil
}
