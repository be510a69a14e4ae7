// Package ports defines interfaces between layers in the hexagonal architecture.
// Store ports are implemented by outbound storage adapters and called by the
// inbound HTTP handlers.
package ports
