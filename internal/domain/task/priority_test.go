package task

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

func TestPriority_TotalOrder(t *testing.T) {
	t.Parallel()

	ordered := []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

	for i, a := range ordered {
		for j, b := range ordered {
			wantHigher := i > j
			if got := a.IsHigherThan(b); got != wantHigher {
				t.Errorf("%s.IsHigherThan(%s) = %v, want %v", a, b, got, wantHigher)
			}

			var wantCmp int
			switch {
			case i < j:
				wantCmp = -1
			case i > j:
				wantCmp = 1
			}
			if got := a.Compare(b); got != wantCmp {
				t.Errorf("%s.Compare(%s) = %d, want %d", a, b, got, wantCmp)
			}
		}
	}

	shuffled := []Priority{PriorityHigh, PriorityLow, PriorityUrgent, PriorityMedium}
	slices.SortFunc(shuffled, Priority.Compare)
	if !slices.Equal(shuffled, ordered) {
		t.Errorf("sorted priorities = %v, want %v", shuffled, ordered)
	}
}

func TestPriority_Ordinals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p     Priority
		value int
		name  string
		label string
	}{
		{PriorityLow, 1, "LOW", "Low"},
		{PriorityMedium, 2, "MEDIUM", "Medium"},
		{PriorityHigh, 3, "HIGH", "High"},
		{PriorityUrgent, 4, "URGENT", "Urgent"},
	}

	for _, tt := range tests {
		if int(tt.p) != tt.value {
			t.Errorf("%s ordinal = %d, want %d", tt.name, int(tt.p), tt.value)
		}
		if tt.p.Name() != tt.name {
			t.Errorf("Name() = %q, want %q", tt.p.Name(), tt.name)
		}
		if tt.p.Label() != tt.label {
			t.Errorf("Label() = %q, want %q", tt.p.Label(), tt.label)
		}
		if tt.p.String() != tt.label {
			t.Errorf("String() = %q, want %q", tt.p.String(), tt.label)
		}
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Priority
		wantErr bool
	}{
		{raw: "LOW", want: PriorityLow},
		{raw: "medium", want: PriorityMedium},
		{raw: "High", want: PriorityHigh},
		{raw: " urgent ", want: PriorityUrgent},
		{raw: "3", want: PriorityHigh},
		{raw: "0", wantErr: true},
		{raw: "5", wantErr: true},
		{raw: "critical", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePriority(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("ParsePriority(%q) error = %v, want ErrValidation", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPriority_JSONUsesName(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		P Priority `json:"p"`
	}{P: PriorityUrgent})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(b) != `{"p":"URGENT"}` {
		t.Errorf("Marshal = %s, want {\"p\":\"URGENT\"}", b)
	}

	if _, err := json.Marshal(Priority(9)); err == nil {
		t.Error("Marshal(Priority(9)) error = nil, want error")
	}
}
