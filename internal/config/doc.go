// Package config defines the application's configuration structure and
// loading logic. Configuration comes from environment variables (CARDEX_
// prefix) with an optional YAML file for local development, and is
// validated before the application starts.
package config
