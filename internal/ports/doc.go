// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Document ports are implemented by document adapters and driven by the
// application layer when entry types change.
package ports
