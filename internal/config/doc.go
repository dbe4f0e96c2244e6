// Package config provides configuration loading, merging, and validation
// facilities for the item service.
//
// Configuration is assembled from multiple sources. Merging only fills
// fields that are still zero, so the first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
