package application

type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewed  Status = "reviewed"
	StatusInterview Status = "interview"
	StatusRejected  Status = "rejected"
	StatusSelected  Status = "selected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusReviewed, StatusInterview, StatusRejected, StatusSelected:
		return Status(s), true
	default:
		return "", false
	}
}

// transitions is the full set of legal edges. Pending is the sole initial
// state; selected and rejected are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusReviewed, StatusRejected},
	StatusReviewed:  {StatusInterview, StatusRejected},
	StatusInterview: {StatusSelected, StatusRejected},
}

// CanTransition reports whether moving from to next is a legal edge.
// Self-transitions and backward or skipping moves are rejected.
func (s Status) CanTransition(next Status) bool {
	for _, n := range transitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
