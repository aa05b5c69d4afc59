package domain

import "time"

type AttendeeKind string

const (
	// AttendeeMember is a member attending on their own account.
	AttendeeMember AttendeeKind = "member"
	// AttendeeGuest is a non-member person brought by a member.
	AttendeeGuest AttendeeKind = "guest"
)

// Attendee is the billable identity behind a presence, resolved once
// when the presence is loaded instead of coalescing nullable columns
// at every call site.
type Attendee struct {
	Kind AttendeeKind `json:"kind"`

	// MemberID is the attending member (Kind == member) or the
	// bringing member (Kind == guest). Always set.
	MemberID uint `json:"member_id"`

	// GuestPersonID is set only when Kind == guest.
	GuestPersonID uint `json:"guest_person_id,omitempty"`
}

// IsMember reports whether the billable person attends on a member
// account. Guests never do, regardless of who brought them.
func (a Attendee) IsMember() bool {
	return a.Kind == AttendeeMember
}

// Presence links exactly one billable person to one activity.
// Presences are append-only: never updated, never deleted.
type Presence struct {
	ID         uint      `json:"id"`
	ActivityID uint      `json:"activity_id"`
	Attendee   Attendee  `json:"attendee"`
	CreatedAt  time.Time `json:"created_at"`
}
