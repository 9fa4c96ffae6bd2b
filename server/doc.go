// Package server exposes the adventure engine as an MCP tool surface: five
// tools (validate, start_adventure, make_choice, show_status, reset_adventure)
// served over streamable HTTP at the root path, or over stdio for local runs.
//
// The package is a thin translation layer: tool handlers decode call
// arguments, delegate to the turn controller, and wrap the returned text in
// an MCP result. HTTP requests must carry the configured bearer token.
package server
