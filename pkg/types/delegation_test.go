package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelegationEdgeStaleAt(t *testing.T) {
	tests := []struct {
		name   string
		expiry Ledger
		now    Ledger
		stale  bool
	}{
		{name: "permanent edge never stale", expiry: 0, now: 1 << 40, stale: false},
		{name: "before expiry", expiry: 100, now: 99, stale: false},
		{name: "at expiry", expiry: 100, now: 100, stale: true},
		{name: "after expiry", expiry: 100, now: 101, stale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edge := DelegationEdge{Delegator: "a", Delegate: "b", Expiry: tt.expiry, Active: true}
			assert.Equal(t, tt.stale, edge.StaleAt(tt.now))
			assert.Equal(t, tt.expiry == 0, edge.Permanent())
		})
	}
}

func TestValidEndReason(t *testing.T) {
	assert.True(t, ValidEndReason(EndReasonRevoked))
	assert.True(t, ValidEndReason(EndReasonExpired))
	assert.False(t, ValidEndReason("cancelled"))
	assert.False(t, ValidEndReason(""))
}
