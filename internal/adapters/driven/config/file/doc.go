// Package file implements the SettingsStore port over a TOML file.
//
// Configuration is looked up in this order: an explicit --config path,
// a repo-local .verbump.toml in the working directory, then the user
// file at ~/.verbump/config.toml. A missing file yields defaults;
// malformed TOML aborts initialisation.
package file
