package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/spirit-symposium/event-registration/events"
)

type RegType string

const (
	INDIVIDUAL RegType = "Individual"
	TEAM       RegType = "Team"
)

type Gender string

const (
	MALE   Gender = "Male"
	FEMALE Gender = "Female"
	OTHER  Gender = "Other"
)

type PaymentStatus string

const (
	PAYMENT_PENDING    PaymentStatus = "Pending"
	PAYMENT_PROCESSING PaymentStatus = "Processing"
	PAYMENT_COMPLETED  PaymentStatus = "Completed"
)

// Registration is one registrant (or the team lead for team entries).
// The JSON tags are the wire contract, shared field-for-field with the
// stored documents.
type Registration struct {
	ID                string        `json:"id,omitempty"`
	RegistrationID    string        `json:"registrationId"`
	RegType           RegType       `json:"regType"`
	TeamName          string        `json:"teamName,omitempty"`
	TeamMembers       string        `json:"teamMembers,omitempty"`
	MemberNames       []string      `json:"memberNames,omitempty"`
	Name              string        `json:"name"`
	College           string        `json:"college"`
	Department        string        `json:"department"`
	Year              string        `json:"year"`
	Gender            Gender        `json:"gender"`
	Phone             string        `json:"phone"`
	Email             string        `json:"email"`
	Events            []string      `json:"events"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	PaymentScreenshot string        `json:"paymentScreenshot,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// DeleteOutcome describes what a scoped delete did to a registration.
type DeleteOutcome int

const (
	// DELETED_DOCUMENT means the whole registration was removed.
	DELETED_DOCUMENT DeleteOutcome = iota
	// REMOVED_EVENT means only the scoped event was dropped from the
	// registration's event list.
	REMOVED_EVENT
)

type Repository interface {
	CreateRegistration(ctx context.Context, reg *Registration) error
	GetRegistrationsByEmail(ctx context.Context, email string) ([]Registration, error)
	GetRegistrationByCode(ctx context.Context, code string) (Registration, error)
	// ListRegistrations returns registrations newest first. An empty
	// eventFilter returns everything; otherwise only registrations whose
	// event list contains eventFilter.
	ListRegistrations(ctx context.Context, eventFilter string) ([]Registration, error)
	// DeleteRegistration removes the registration entirely when
	// eventFilter is empty. Otherwise it drops eventFilter from the
	// event list, deleting the document only if the list empties.
	DeleteRegistration(ctx context.Context, id string, eventFilter string) (DeleteOutcome, error)
}

// SequenceAllocator hands out registration-code sequence numbers. The
// increment-and-fetch must be a single atomic store operation: the
// counter is the sole source of code uniqueness.
type SequenceAllocator interface {
	NextSequence(ctx context.Context) (int64, error)
}

// CodeFormat renders sequence numbers as human-readable registration
// codes, e.g. {Prefix: "SP26-", Width: 4} -> "SP26-0042". The format is
// deployment configuration; codes are never reused after deletion.
type CodeFormat struct {
	Prefix string
	Width  int
}

func (f CodeFormat) Format(seq int64) string {
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, seq)
}

const (
	MinEvents = 1
	MaxEvents = 3
)

// Submit runs the registration algorithm: duplicate checks against the
// email's prior registrations, sequence allocation, and persistence with
// payment status forced to Completed. On success reg is updated in place
// with its assigned code.
//
// Duplicate rules: an email may hold at most one symposium-category
// registration (any registration whose event list is not exclusively
// online games), and at most one registration per specific online game,
// independently of each other.
func Submit(ctx context.Context, reg *Registration, repo Repository, seq SequenceAllocator, format CodeFormat) error {
	if len(reg.Events) < MinEvents || len(reg.Events) > MaxEvents {
		return NewInvalidEventSelectionError(len(reg.Events))
	}

	existing, err := repo.GetRegistrationsByEmail(ctx, reg.Email)
	if err != nil {
		return NewFailedToFetchError(fmt.Sprintf("Failed to fetch registrations for email %q", reg.Email), err)
	}

	requestedGames := onlineGames(reg.Events)

	if len(requestedGames) == 0 {
		for _, prior := range existing {
			if !exclusivelyOnlineGames(prior.Events) {
				return NewDuplicateSymposiumError(reg.Email)
			}
		}
	} else {
		for _, game := range requestedGames {
			for _, prior := range existing {
				if containsEvent(prior.Events, game) {
					return NewDuplicateOnlineGameError(reg.Email, game)
				}
			}
		}
	}

	n, err := seq.NextSequence(ctx)
	if err != nil {
		return NewFailedToAllocateSequenceError(err)
	}

	reg.RegistrationID = format.Format(n)
	reg.PaymentStatus = PAYMENT_COMPLETED
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now().UTC()
	}

	return repo.CreateRegistration(ctx, reg)
}

func onlineGames(names []string) []string {
	var games []string
	for _, name := range names {
		if events.IsOnlineGame(name) {
			games = append(games, name)
		}
	}
	return games
}

func exclusivelyOnlineGames(names []string) bool {
	for _, name := range names {
		if !events.IsOnlineGame(name) {
			return false
		}
	}
	return len(names) > 0
}

func containsEvent(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
