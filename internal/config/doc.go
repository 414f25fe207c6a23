// Package config provides configuration loading, merging, and validation
// facilities for the circuit runner.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources take precedence over later ones for every field that
// is already set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server runtime and
// [GetClientConfig] for the terminal client.
package config
