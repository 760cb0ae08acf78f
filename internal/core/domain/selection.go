package domain

import (
	"errors"
	"time"
)

var ErrSelectionNotFound = errors.New("selection not found")

// Selection is a class a student has picked before paying. Email is the
// owner identity; class fields are denormalised at selection time so the
// cart survives later edits to the class record.
type Selection struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	ClassID         string    `json:"class_id" bson:"class_id"`
	ClassName       string    `json:"class_name" bson:"class_name"`
	Image           string    `json:"image" bson:"image"`
	Price           float64   `json:"price" bson:"price"`
	InstructorName  string    `json:"instructor_name" bson:"instructor_name"`
	Email           string    `json:"email" bson:"email"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
