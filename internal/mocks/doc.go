// Package mocks provides hand-written test doubles for the store and auth
// interfaces. Each mock takes optional per-call behavior functions and falls
// back to configured default values.
package mocks
