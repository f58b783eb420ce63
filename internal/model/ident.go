// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file converts registry names into exported Go identifiers.

package model

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	identRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// GoIdent converts a registry name into an exported Go identifier.
//
// Names are split on `_` and `-`. A segment with no lower-case letters
// (UPPER_SNAKE) is title-cased; any other segment only has its first letter
// upper-cased, so camelCase input keeps its inner capitals:
//
//	AMBIENT_ENTITY_EFFECT -> AmbientEntityEffect
//	dust_color_transition -> DustColorTransition
//	smallFlame            -> SmallFlame
func GoIdent(name string) (string, error) {
	if !nameRegex.MatchString(name) {
		return "", fmt.Errorf("name %q may only contain letters, digits, '_' and '-'", name)
	}

	var sb strings.Builder
	for _, segment := range strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' }) {
		runes := []rune(segment)
		sb.WriteRune(unicode.ToUpper(runes[0]))
		rest := string(runes[1:])
		if strings.ToUpper(segment) == segment {
			rest = strings.ToLower(rest)
		}
		sb.WriteString(rest)
	}

	ident := sb.String()
	if !identRegex.MatchString(ident) {
		return "", fmt.Errorf("name %q does not produce an exported Go identifier (got %q)", name, ident)
	}
	return ident, nil
}
