// Package config loads and merges application configuration for both the
// go-post-board server and its terminal client.
//
// The server configuration is assembled by a builder that layers three
// sources — environment variables, command-line flags, and an optional JSON
// file — merging them with mergo so that later non-zero values win. The
// client reads environment variables only.
package config
