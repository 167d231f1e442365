package parcel

// TransitionPolicy decides whether a package may move from one status to another.
// TransitionTable is the production implementation; handlers depend on this
// interface so the decision can be observed in tests.
type TransitionPolicy interface {
	Allowed(current, requested Status) bool
}

// TransitionTable is the fixed rule set of allowed status moves:
//
//	Created  -> Sent, Cancelled
//	Sent     -> Accepted, Returned, Cancelled
//	Returned -> Sent, Cancelled
//	Accepted -> (none)
//	Cancelled-> (none)
//
// Every other pair, including a status to itself and anything involving
// Unknown, is disallowed. The zero value is ready to use.
type TransitionTable struct{}

var _ TransitionPolicy = TransitionTable{}

func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:  {Sent, Cancelled},
		Sent:     {Accepted, Returned, Cancelled},
		Returned: {Sent, Cancelled},
	}
}

// NewTransitionTable returns the rule table.
func NewTransitionTable() TransitionTable {
	return TransitionTable{}
}

// Allowed reports whether current -> requested is a listed move.
func (TransitionTable) Allowed(current, requested Status) bool {
	for _, target := range allowedTransitions()[current] {
		if target == requested {
			return true
		}
	}
	return false
}

// Targets lists the statuses reachable from s in one move. Final and unknown
// statuses return an empty slice.
func (TransitionTable) Targets(s Status) []Status {
	targets := allowedTransitions()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// IsFinal reports whether no move leaves s.
func (t TransitionTable) IsFinal(s Status) bool {
	return s.Validate() == nil && len(t.Targets(s)) == 0
}
