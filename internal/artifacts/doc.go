// Package artifacts reads and writes the files a pipeline run depends on.
//
// Store exposes six operations: ReadYAML and LoadJSON return configbox.Box
// values, SaveJSON writes indented JSON, SaveBinary and LoadBinary round-trip
// arbitrary Go values through encoding/gob, and CreateDirectories prepares
// directory trees. Every operation validates its arguments before touching the
// filesystem, logs its outcome through the injected zap logger, and leaves
// failure handling to the caller.
package artifacts
