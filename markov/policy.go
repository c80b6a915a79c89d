package markov

import "monopolycore/coreerrors"

// JailPolicy selects how a player behaves once in jail, which changes the
// shape of the Markov chain (and hence its stationary distribution).
type JailPolicy int

const (
	// Leave treats Jail as an ordinary pass-through square: the player
	// always leaves on their very next turn.
	Leave JailPolicy = iota
	// Stay models the full jail residency: escape on any turn with
	// probability 1/6 (rolling doubles), or mandatory release after the
	// third jailed turn.
	Stay
)

func (p JailPolicy) String() string {
	switch p {
	case Leave:
		return "leave"
	case Stay:
		return "stay"
	default:
		return "unknown"
	}
}

// ParsePolicy validates a policy name from configuration or a decision
// call. Unknown names are a host bug, not a transient condition.
func ParsePolicy(name string) (JailPolicy, error) {
	switch name {
	case "leave":
		return Leave, nil
	case "stay":
		return Stay, nil
	default:
		return Leave, coreerrors.InvalidArgument("unknown jail policy %q", name)
	}
}

// NumStates returns the size of the state space for the policy: the board
// alone for Leave, or the board plus two synthetic jail-residency states
// for Stay.
func (p JailPolicy) NumStates() int {
	if p == Stay {
		return StayStates
	}
	return LeaveStates
}
