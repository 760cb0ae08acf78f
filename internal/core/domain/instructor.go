package domain

import (
	"errors"
	"time"
)

var ErrInstructorNotFound = errors.New("instructor not found")

// Instructor is the public profile shown on the instructors page. It is a
// separate record from the instructor's Account: the account carries the
// role, this carries the presentation data.
type Instructor struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Image           string    `json:"image" bson:"image"`
	NumberOfClasses int       `json:"number_of_classes" bson:"number_of_classes"`
	ClassNames      []string  `json:"class_names,omitempty" bson:"class_names,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
