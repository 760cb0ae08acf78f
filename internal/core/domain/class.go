package domain

import (
	"errors"
	"time"
)

// ClassStatus represents the review state of a submitted class.
type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusDenied   ClassStatus = "denied"
)

// validTransitions defines the allowed review transitions. Approval and
// denial are terminal.
var validTransitions = map[ClassStatus][]ClassStatus{
	StatusPending: {StatusApproved, StatusDenied},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrClassNotFound = errors.New("class not found")

// CanTransitionTo reports whether a review transition from s to next is valid.
func (s ClassStatus) CanTransitionTo(next ClassStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Class is a summer class submitted by an instructor. InstructorEmail is the
// owner identity, set at creation and never changed afterwards.
type Class struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	Name            string      `json:"name" bson:"name"`
	Image           string      `json:"image" bson:"image"`
	InstructorName  string      `json:"instructor_name" bson:"instructor_name"`
	InstructorEmail string      `json:"instructor_email" bson:"instructor_email"`
	AvailableSeats  int         `json:"available_seats" bson:"available_seats"`
	Price           float64     `json:"price" bson:"price"`
	Enrolled        int         `json:"enrolled" bson:"enrolled"`
	Status          ClassStatus `json:"status" bson:"status"`
	Feedback        string      `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
}
