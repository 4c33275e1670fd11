package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileDisabledCommands(t *testing.T) {
	tests := []struct {
		name     string
		current  []string
		enable   []string
		disable  []string
		expected []string
	}{
		{
			name:     "disable adds to empty set",
			current:  nil,
			enable:   nil,
			disable:  []string{"ping"},
			expected: []string{"ping"},
		},
		{
			name:     "enable removes from set",
			current:  []string{"ban", "ping"},
			enable:   []string{"ping"},
			disable:  nil,
			expected: []string{"ban"},
		},
		{
			name:     "disable wins on overlap",
			current:  nil,
			enable:   []string{"a"},
			disable:  []string{"a"},
			expected: []string{"a"},
		},
		{
			name:     "names are lowercased",
			current:  []string{"ban"},
			enable:   []string{"BAN"},
			disable:  []string{"Ping", "KICK"},
			expected: []string{"kick", "ping"},
		},
		{
			name:     "empty strings discarded",
			current:  []string{"ban"},
			enable:   []string{""},
			disable:  []string{"", "  ", "mute"},
			expected: []string{"ban", "mute"},
		},
		{
			name:     "duplicates collapse",
			current:  []string{"ban", "ban"},
			enable:   nil,
			disable:  []string{"ban", "ban", "kick"},
			expected: []string{"ban", "kick"},
		},
		{
			name:     "output sorted lexicographically",
			current:  nil,
			enable:   nil,
			disable:  []string{"zeta", "alpha", "mid"},
			expected: []string{"alpha", "mid", "zeta"},
		},
		{
			name:     "no-op leaves set unchanged",
			current:  []string{"ban", "ping"},
			enable:   nil,
			disable:  nil,
			expected: []string{"ban", "ping"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReconcileDisabledCommands(tt.current, tt.enable, tt.disable)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReconcileDisabledCommands_OrderIndependent(t *testing.T) {
	a := ReconcileDisabledCommands([]string{"ping"}, []string{"ban", "kick"}, []string{"mute", "warn"})
	b := ReconcileDisabledCommands([]string{"ping"}, []string{"kick", "ban"}, []string{"warn", "mute"})
	assert.Equal(t, a, b)
}

func TestReconcileDisabledCommands_Idempotent(t *testing.T) {
	current := []string{"ban", "ping"}
	enable := []string{"ping"}
	disable := []string{"mute"}

	once := ReconcileDisabledCommands(current, enable, disable)
	twice := ReconcileDisabledCommands(once, enable, disable)
	assert.Equal(t, once, twice)
}

func TestReconcileDisabledCommands_DoesNotMutateInputs(t *testing.T) {
	current := []string{"ping", "ban"}
	ReconcileDisabledCommands(current, []string{"ping"}, []string{"kick"})
	assert.Equal(t, []string{"ping", "ban"}, current)
}
