// Package domain contains shared domain types used across aggregate sub-packages.
// Aggregates live in sub-packages (domain/project, domain/task, domain/user).
// This root package holds sentinel errors, the generic Entity identity base,
// and the domain event model (Event, EventBase, EventBuffer).
package domain
