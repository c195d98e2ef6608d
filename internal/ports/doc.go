// Package ports holds the interfaces that connect the layers.
//
// Inbound ports (ProjectService, TaskService, UserService) are implemented in
// internal/app and consumed by the HTTP handlers. Outbound ports (the
// repositories, OutboxStore, EventPublisher, HealthChecker) are implemented
// by adapters and consumed by internal/app. Mocks for every port live in
// the top-level mocks package.
package ports
