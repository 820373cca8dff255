// Package project loads a pipeline's configuration files and prepares the
// directories each stage writes into.
//
// ConfigurationManager reads config, params, and schema YAML through an
// artifacts.Store, creates the artifacts root, and decodes per-stage sections
// into typed structs on request.
package project
