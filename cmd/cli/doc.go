// Package cli constructs the dsp command-line interface, wiring the Cobra
// command hierarchy, the Viper-backed configuration loader, and zap logging
// around the artifact store. Commands prepare a project's artifact
// directories, create arbitrary directory lists, and inspect YAML, JSON, or binary
// artifacts.
package cli
