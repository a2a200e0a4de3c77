package models

import "time"

type ContactStatus string

const (
	ContactPending ContactStatus = "pending"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactPending, ContactRead, ContactReplied:
		return true
	}
	return false
}

type Contact struct {
	ID        string        `json:"id" bson:"_id"`
	Name      string        `json:"name" bson:"name" validate:"required"`
	Email     string        `json:"email" bson:"email" validate:"required,email"`
	Subject   string        `json:"subject" bson:"subject" validate:"required"`
	Message   string        `json:"message" bson:"message" validate:"required"`
	Status    ContactStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}
