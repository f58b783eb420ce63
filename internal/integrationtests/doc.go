// Package integration_tests exercises the whole generator against the
// registries checked into this repository.
package integration_tests
