package reservation

import (
	"fmt"

	"staybook/internal/pkg/errs"
)

type Status uint8

const (
	StatusAwaitingDecision Status = iota + 1
	StatusAwaitingReview
	StatusRejected
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusAwaitingDecision: "AWAITING_DECISION",
	StatusAwaitingReview:   "AWAITING_REVIEW",
	StatusRejected:         "REJECTED",
	StatusCompleted:        "COMPLETED",
}

func ParseStatus(v string) (Status, error) {
	for s, name := range statusNames {
		if name == v {
			return s, nil
		}
	}
	return 0, errs.InvalidInput("status", fmt.Sprintf("unknown reservation status %q", v))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// Blocking reports whether a reservation in this status holds its dates.
func (s Status) Blocking() bool {
	switch s {
	case StatusAwaitingDecision, StatusAwaitingReview, StatusCompleted:
		return true
	case StatusRejected:
		return false
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

func BlockingStatuses() []Status {
	return []Status{StatusAwaitingDecision, StatusAwaitingReview, StatusCompleted}
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal %s", s)
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Action is a host decision on a pending reservation.
type Action uint8

const (
	ActionAccept Action = iota + 1
	ActionReject
)

func ParseAction(v string) (Action, error) {
	switch v {
	case "accept", "ACCEPT":
		return ActionAccept, nil
	case "reject", "REJECT":
		return ActionReject, nil
	default:
		return 0, errs.InvalidInput("action", fmt.Sprintf("unknown decision %q", v))
	}
}

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "ACCEPT"
	case ActionReject:
		return "REJECT"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Role selects which side of the reservations an account is listing.
type Role uint8

const (
	RoleGuest Role = iota + 1
	RoleHost
)

func ParseRole(v string) (Role, error) {
	switch v {
	case "", "guest", "GUEST", "custom":
		return RoleGuest, nil
	case "host", "HOST", "landlord":
		return RoleHost, nil
	default:
		return 0, errs.InvalidInput("role", fmt.Sprintf("unknown role %q", v))
	}
}

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "GUEST"
	case RoleHost:
		return "HOST"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}
