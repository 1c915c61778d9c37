package models

import "time"

// ReviewAuthor may be absent when the authoring account was deleted.
type ReviewAuthor struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

type Review struct {
	ID            string        `json:"_id"`
	Comment       string        `json:"comment"`
	Qualification int           `json:"qualification"`
	User          *ReviewAuthor `json:"user,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type CreateReviewRequest struct {
	Comment       string `json:"comment" validate:"required,min=10"`
	Qualification int    `json:"qualification" validate:"required,min=1,max=5"`
}
