// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers, the scenario runner, the terminal UI). The
// Scheduler port is implemented by platform code and called by the
// application layer.
package ports
