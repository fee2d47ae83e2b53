// Package config provides configuration loading, merging, and validation
// facilities for the hub dashboard binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive the defaults from defaults.go.
// The entry points are [GetClientConfig] for the terminal dashboard and
// [GetWebConfig] for the web dashboard.
package config
