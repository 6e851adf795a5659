package slot

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Outcome is the decision applied to a pending slot.
type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomeRejected Outcome = "rejected"
)

func (o Outcome) IsValid() bool {
	return o == OutcomeApproved || o == OutcomeRejected
}

// TargetStatus maps an outcome to the status a pending slot transitions to.
func (o Outcome) TargetStatus() Status {
	if o == OutcomeApproved {
		return StatusConfirmed
	}
	return StatusCancelled
}

type SeatingPreference string

const (
	SeatingStandard    SeatingPreference = "standard"
	SeatingBooth       SeatingPreference = "booth"
	SeatingOutdoor     SeatingPreference = "outdoor"
	SeatingPrivateRoom SeatingPreference = "private_room"
	SeatingBar         SeatingPreference = "bar"
	SeatingHighTop     SeatingPreference = "high_top"
	SeatingWindow      SeatingPreference = "window"
	SeatingCounter     SeatingPreference = "counter"
)

func (p SeatingPreference) String() string {
	return string(p)
}

func (p SeatingPreference) IsValid() bool {
	switch p {
	case SeatingStandard, SeatingBooth, SeatingOutdoor, SeatingPrivateRoom,
		SeatingBar, SeatingHighTop, SeatingWindow, SeatingCounter:
		return true
	default:
		return false
	}
}
