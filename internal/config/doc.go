// Package config defines the format-agnostic configuration model for the
// application: the list of generation tasks to run, along with the Loader
// interface implemented by each task-file format.
//
// The `config.Model` is the single source of truth for the `app` and
// `pipeline` packages. Concrete loaders, such as for HCL, YAML and TOML, are
// provided in separate packages.
package config
