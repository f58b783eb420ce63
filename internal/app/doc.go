// Package app contains the core application logic. It loads the generation
// tasks, runs them on a bounded worker pool and, in watch mode, reruns them
// when their inputs change. It is decoupled from any specific entrypoint.
package app
