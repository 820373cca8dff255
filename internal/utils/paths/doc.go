// Package paths normalizes user-supplied filesystem paths, expanding the home
// directory shortcut and collapsing duplicates before directories are created.
package paths
