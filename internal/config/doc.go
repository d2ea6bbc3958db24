// Package config loads and watches the editor configuration.
//
// Configuration files may be TOML or YAML; the format is chosen by
// file extension. Missing files are not an error: the defaults apply.
// A Watcher can monitor the loaded file and deliver reloaded
// configurations on change.
package config
