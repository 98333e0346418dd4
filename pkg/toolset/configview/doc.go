// Package configview provides the config toolset: a single read-only tool
// rendering the server's effective configuration.
package configview
