package impl

import (
	"context"
	"log/slog"
	"strings"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/gateway"
	"tiffin/internal/pagelist"
	"tiffin/internal/usecase"
)

// boardService implements the BoardUsecase interface for the contact and
// feedback boards.
type boardService struct {
	contacts  gateway.ContactGateway
	feedbacks gateway.FeedbackGateway
	pageSize  int
	logger    *slog.Logger
}

// NewBoardService is the constructor for boardService.
func NewBoardService(
	contacts gateway.ContactGateway,
	feedbacks gateway.FeedbackGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BoardUsecase {
	return &boardService{
		contacts:  contacts,
		feedbacks: feedbacks,
		pageSize:  cfg.Boards.PageSize,
		logger:    logger,
	}
}

func (srv *boardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Contacts returns one page of the contact grid, searched over name and
// email and sorted by id. The requested page is clamped to the filtered
// range. A read failure renders as an empty grid alongside the error.
func (srv *boardService) Contacts(ctx context.Context, params pagelist.Params) (pagelist.Page[entity.ContactMessage], error) {
	messages, err := srv.contacts.List(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load contact messages", slog.Any("error", err))

		return pagelist.Page[entity.ContactMessage]{}, err
	}

	return project(messages, params, srv.pageSize,
		func(m entity.ContactMessage, term string) bool {
			return pagelist.MatchAny(term, m.Name, m.Email)
		},
		func(m entity.ContactMessage) int64 { return m.ID },
	), nil
}

// SubmitContact posts a contact message after validating the form.
func (srv *boardService) SubmitContact(ctx context.Context, input usecase.ContactInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name, email and message are required")
	}

	err := srv.contacts.Create(ctx, entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to submit contact message", slog.Any("error", err))

		return err
	}
	srv.log(ctx).Info("Contact message submitted", slog.String("email", input.Email))

	return nil
}

// Feedbacks returns one page of the feedback grid, searched over the
// message text and sorted by id, with the same clamping as Contacts.
func (srv *boardService) Feedbacks(ctx context.Context, params pagelist.Params) (pagelist.Page[entity.Feedback], error) {
	entries, err := srv.feedbacks.List(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load feedback entries", slog.Any("error", err))

		return pagelist.Page[entity.Feedback]{}, err
	}

	return project(entries, params, srv.pageSize,
		func(f entity.Feedback, term string) bool {
			return pagelist.MatchAny(term, f.Message)
		},
		func(f entity.Feedback) int64 { return f.ID },
	), nil
}

// SubmitFeedback posts a feedback message. Blank input is rejected before
// any network call.
func (srv *boardService) SubmitFeedback(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return domainerrors.ErrFeedbackEmpty
	}

	if err := srv.feedbacks.Create(ctx, message); err != nil {
		srv.log(ctx).Warn("Failed to submit feedback", slog.Any("error", err))

		return err
	}
	srv.log(ctx).Info("Feedback submitted")

	return nil
}

// project runs the grid projection with the board's page size and clamps
// the page to the filtered range, re-projecting when the requested page
// fell outside it.
func project[T any](source []T, params pagelist.Params, pageSize int,
	match func(T, string) bool, key func(T) int64,
) pagelist.Page[T] {
	params.PageSize = pageSize

	page := pagelist.Project(source, params, match, key)
	if clamped := pagelist.Clamp(params.Page, page.TotalPages); clamped != params.Page {
		params.Page = clamped
		page = pagelist.Project(source, params, match, key)
	}

	return page
}
