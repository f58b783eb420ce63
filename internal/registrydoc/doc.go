// Package registrydoc loads the external registry document: a JSON array of
// `{"name": ..., "id": ...}` objects whose order is semantically significant.
//
// Comments and trailing commas are tolerated (the file is read as JSONC), but
// every element must still be an object with non-empty string `name` and
// `id` fields. Anything else is reported as generr.MalformedInput.
package registrydoc
