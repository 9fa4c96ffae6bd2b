// Package narrator defines the provider-agnostic abstractions and concrete
// helpers for driving the narrative backend of the adventure engine.
//
// Core goals:
//   - Keep the turn contract (narrative, exactly 3 choices, image prompt,
//     inventory) in one typed shape validated at the provider boundary
//   - Centralize prompt construction and response parsing so provider
//     subpackages only move text in and out of their SDKs
//   - Facilitate lightweight mocking for tests (MockNarrator)
//
// Providers (Gemini, OpenAI, Anthropic) implement the Narrator interface from
// this package so higher layers (engine, server) remain decoupled from vendor
// SDKs.
package narrator
