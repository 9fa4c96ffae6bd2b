// Package engine implements the turn controller: the orchestration of one
// user-facing operation (start, choose, status, reset) across the session
// store, the narrator and the scene image generator.
//
// The engine owns the per-user state machine (NO_SESSION / ACTIVE) and the
// user-visible message strings. Turns for the same user are serialized via a
// per-user mutex so overlapping calls cannot interleave read-modify-write
// sequences on the story log.
package engine
