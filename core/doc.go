// Package core provides the foundational domain types and interfaces of the
// adventure engine. It defines:
//
//   - Sessions (per-user adventure state: story log + inventory)
//   - SessionStore (pluggable persistence for sessions)
//   - Sentinel errors shared across packages
//
// The package intentionally keeps implementation concerns (storage backends,
// turn orchestration, narrator providers) out of scope, exposing small
// interfaces so higher layers stay decoupled from concrete implementations.
package core
