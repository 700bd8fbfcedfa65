// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// every field they set:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig]; [NewFlags] creates the flag set
// the CLI attaches to its root command.
package config
