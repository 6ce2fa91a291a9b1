package ticket

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// OpenPrefix is the channel and role name prefix of an open ticket.
	OpenPrefix = "ticket-"

	// ClosedPrefix is the channel and role name prefix of a closed ticket.
	ClosedPrefix = "closed-"
)

// State is the lifecycle state of a ticket. It is never stored anywhere; the
// channel name prefix is the sole source of truth, pattern-matched at the
// start of every operation.
type State int

const (
	// StateNone means the channel is not a ticket channel.
	StateNone State = iota

	// StateOpen is a ticket whose channel name starts with "ticket-".
	StateOpen

	// StateClosed is a ticket whose channel name starts with "closed-".
	StateClosed
)

// String implements the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "none"
	}
}

// ChannelName formats the channel (and role) name for ticket number n, e.g.
// ChannelName(7) == "ticket-007". Numbers beyond three digits keep growing
// without truncation.
func ChannelName(n int) string {
	return fmt.Sprintf("%s%03d", OpenPrefix, n)
}

// StateOf reads the ticket state from a channel name. The prefix match is
// exact and case-sensitive; anything else is not a ticket channel.
func StateOf(name string) State {
	switch {
	case strings.HasPrefix(name, OpenPrefix):
		return StateOpen
	case strings.HasPrefix(name, ClosedPrefix):
		return StateClosed
	default:
		return StateNone
	}
}

// Renamed swaps the state prefix of a ticket channel name, keeping the
// number suffix untouched. Non-ticket names are returned unchanged.
func Renamed(name string, to State) string {
	if StateOf(name) == StateNone {
		return name
	}
	suffix := strings.TrimPrefix(strings.TrimPrefix(name, OpenPrefix), ClosedPrefix)
	switch to {
	case StateOpen:
		return OpenPrefix + suffix
	case StateClosed:
		return ClosedPrefix + suffix
	default:
		return name
	}
}

// Number parses the ticket number out of a channel name. The second return
// is false for names that are not ticket channels.
func Number(name string) (int, bool) {
	if StateOf(name) == StateNone {
		return 0, false
	}
	suffix := strings.TrimPrefix(strings.TrimPrefix(name, OpenPrefix), ClosedPrefix)
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}
