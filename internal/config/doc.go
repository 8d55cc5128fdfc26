// Package config provides configuration loading, merging, and validation
// facilities for the suite, the smoke command and the stub service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. A .env file (path from DOTENV, ".env" by default; missing file is fine)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Built-in defaults fill whatever is still empty afterwards. The main entry
// points are [GetSuiteConfig] and [GetStubConfig].
package config
