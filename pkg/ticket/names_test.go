package ticket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelName(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "First", n: 1, want: "ticket-001"},
		{name: "Padded", n: 42, want: "ticket-042"},
		{name: "ThreeDigits", n: 999, want: "ticket-999"},
		{name: "BeyondPadding", n: 1234, want: "ticket-1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ChannelName(tt.n))
		})
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		want    State
	}{
		{name: "Open", channel: "ticket-001", want: StateOpen},
		{name: "Closed", channel: "closed-001", want: StateClosed},
		{name: "General", channel: "general", want: StateNone},
		{name: "CaseSensitive", channel: "Ticket-001", want: StateNone},
		{name: "PrefixInMiddle", channel: "my-ticket-001", want: StateNone},
		{name: "Empty", channel: "", want: StateNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StateOf(tt.channel))
		})
	}
}

func TestRenamed(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		to      State
		want    string
	}{
		{name: "OpenToClosed", channel: "ticket-001", to: StateClosed, want: "closed-001"},
		{name: "ClosedToOpen", channel: "closed-001", to: StateOpen, want: "ticket-001"},
		{name: "AlreadyOpen", channel: "ticket-007", to: StateOpen, want: "ticket-007"},
		{name: "BigNumberKept", channel: "ticket-1234", to: StateClosed, want: "closed-1234"},
		{name: "NotATicket", channel: "general", to: StateClosed, want: "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Renamed(tt.channel, tt.to))
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		want    int
		ok      bool
	}{
		{name: "Open", channel: "ticket-001", want: 1, ok: true},
		{name: "Closed", channel: "closed-042", want: 42, ok: true},
		{name: "NotATicket", channel: "general", want: 0, ok: false},
		{name: "BadSuffix", channel: "ticket-abc", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Number(tt.channel)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
