// Package particle holds the particle registry generated from
// data/particles.json.
package particle

//go:generate go run github.com/vk/registrygen/cmd/registrygen ../../registrygen.hcl
