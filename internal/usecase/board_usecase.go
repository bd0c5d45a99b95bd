package usecase

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/pagelist"
)

// ContactInput defines the contact form payload.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// BoardUsecase serves the contact and feedback boards: public submission
// plus the admin grids with search, sort and clamped paging.
type BoardUsecase interface {
	// Contacts returns one page of contact messages. The requested page is
	// clamped to the filtered range. A read failure yields an empty page
	// alongside the error so the grid still renders.
	Contacts(ctx context.Context, params pagelist.Params) (pagelist.Page[entity.ContactMessage], error)

	SubmitContact(ctx context.Context, input ContactInput) error

	// Feedbacks returns one page of feedback entries, clamped like Contacts.
	Feedbacks(ctx context.Context, params pagelist.Params) (pagelist.Page[entity.Feedback], error)

	// SubmitFeedback rejects blank messages before any network call.
	SubmitFeedback(ctx context.Context, message string) error
}
