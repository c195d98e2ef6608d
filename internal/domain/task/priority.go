package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// Priority is an ordered urgency level. The zero value is invalid.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// priorityNames and priorityLabels are indexed by ordinal.
var (
	priorityNames  = [...]string{"", "LOW", "MEDIUM", "HIGH", "URGENT"}
	priorityLabels = [...]string{"", "Low", "Medium", "High", "Urgent"}
)

// ParsePriority accepts a name ("HIGH"), label ("High") or ordinal ("3").
func ParsePriority(raw string) (Priority, error) {
	v := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(v); err == nil {
		if p := Priority(n); p.IsValid() {
			return p, nil
		}
	}
	for i := range priorityNames {
		if i > 0 && strings.EqualFold(priorityNames[i], v) {
			return Priority(i), nil
		}
	}
	return 0, domain.NewValidationError("priority", fmt.Sprintf("invalid: %q", raw))
}

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// Name returns the upper-case identifier used on the wire ("HIGH").
func (p Priority) Name() string {
	if !p.IsValid() {
		return ""
	}
	return priorityNames[p]
}

// Label returns the human-readable label ("High").
func (p Priority) Label() string {
	if !p.IsValid() {
		return ""
	}
	return priorityLabels[p]
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return p.Label()
}

// Compare returns -1, 0 or +1 ordering p relative to other by ordinal.
func (p Priority) Compare(other Priority) int {
	switch {
	case p < other:
		return -1
	case p > other:
		return 1
	default:
		return 0
	}
}

// IsHigherThan reports whether p is strictly more urgent than other.
func (p Priority) IsHigherThan(other Priority) bool {
	return p > other
}

// MarshalText encodes the priority by name so event payloads stay readable.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("marshal priority: invalid value %d", int(p))
	}
	return []byte(p.Name()), nil
}

// UnmarshalText accepts any form understood by ParsePriority.
func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
