// Package api contains the HTTP handlers, the wire-shape view types, and the
// error-to-status mapping for the card catalog service. Handlers depend on
// the store interfaces and never touch SQL directly.
package api
