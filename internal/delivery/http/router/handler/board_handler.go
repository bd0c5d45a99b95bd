package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tiffin/internal/delivery/http/response"
	"tiffin/internal/domain/policy"
	"tiffin/internal/pagelist"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BoardHandlerParams holds dependencies for BoardHandler, injected by Fx.
type BoardHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	BoardUC   usecase.BoardUsecase
	Logger    *slog.Logger
}

// BoardHandler serves the contact and feedback screens.
type BoardHandler struct {
	sessionUC usecase.SessionUsecase
	boardUC   usecase.BoardUsecase
	logger    *slog.Logger
}

// NewBoardHandler is the constructor for BoardHandler
func NewBoardHandler(params BoardHandlerParams) *BoardHandler {
	return &BoardHandler{
		sessionUC: params.SessionUC,
		boardUC:   params.BoardUC,
		logger:    params.Logger,
	}
}

// ContactRequest represents the contact form.
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message" validate:"required"`
}

// FeedbackRequest represents the feedback form.
type FeedbackRequest struct {
	Message string `json:"message" form:"message" validate:"required"`
}

// gridParams reads the admin grid controls from the query string.
func gridParams(c echo.Context) pagelist.Params {
	params := pagelist.Params{
		Search:    c.QueryParam("search"),
		Direction: pagelist.Ascending,
		Page:      1,
	}
	if c.QueryParam("direction") == string(pagelist.Descending) {
		params.Direction = pagelist.Descending
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		params.Page = page
	}

	return params
}

// Contact renders the contact screen; admins additionally get the message
// grid. A grid read failure degrades to an empty grid with a notice.
func (h *BoardHandler) Contact(c echo.Context) error {
	ctx := c.Request().Context()
	session := h.sessionUC.Current(ctx)
	decision := policy.Resolve(session, policy.ScreenContact)

	payload := screenPayload{
		Branch:  string(decision.Branch),
		Session: sessionData(session),
	}

	if decision.Branch == policy.BranchAugmented {
		page, err := h.boardUC.Contacts(ctx, gridParams(c))
		if err != nil {
			payload.Notice = "Could not load messages"
		}
		payload.Data = map[string]any{"grid": page}
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// SubmitContact posts the contact form.
func (h *BoardHandler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.boardUC.SubmitContact(c.Request().Context(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Message sent")
}

// Feedback renders the feedback screen; admins additionally get the
// feedback grid.
func (h *BoardHandler) Feedback(c echo.Context) error {
	ctx := c.Request().Context()
	session := h.sessionUC.Current(ctx)
	decision := policy.Resolve(session, policy.ScreenFeedback)

	payload := screenPayload{
		Branch:  string(decision.Branch),
		Session: sessionData(session),
	}

	if decision.Branch == policy.BranchAugmented {
		page, err := h.boardUC.Feedbacks(ctx, gridParams(c))
		if err != nil {
			payload.Notice = "Could not load feedback"
		}
		payload.Data = map[string]any{"grid": page}
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// SubmitFeedback posts the feedback form.
func (h *BoardHandler) SubmitFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.boardUC.SubmitFeedback(c.Request().Context(), req.Message); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Thanks for the feedback")
}
