package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tiffin/internal/delivery/http/validator"
	"tiffin/internal/domain/entity"
	"tiffin/internal/pagelist"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBoardUC serves canned grids and records submissions.
type fakeBoardUC struct {
	usecase.BoardUsecase

	contacts  []entity.ContactMessage
	params    pagelist.Params
	gridReads int
	feedbacks []string
}

func (f *fakeBoardUC) Contacts(_ context.Context, params pagelist.Params) (pagelist.Page[entity.ContactMessage], error) {
	f.gridReads++
	f.params = params

	return pagelist.Page[entity.ContactMessage]{
		Items:         f.contacts,
		TotalPages:    1,
		FilteredCount: len(f.contacts),
	}, nil
}

func (f *fakeBoardUC) SubmitFeedback(_ context.Context, message string) error {
	f.feedbacks = append(f.feedbacks, message)

	return nil
}

func boardHandler(session entity.Session, board *fakeBoardUC) *BoardHandler {
	return NewBoardHandler(BoardHandlerParams{
		SessionUC: &fakeSessionUC{session: session},
		BoardUC:   board,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestBoardHandler_ContactStandardBranchHasNoGrid(t *testing.T) {
	board := &fakeBoardUC{}
	user := entity.Session{Authenticated: true, Role: entity.RoleUser}
	h := boardHandler(user, board)

	c, rec := newTestContext(t, http.MethodGet, "/contact")
	require.NoError(t, h.Contact(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Branch string `json:"branch"`
			Data   any    `json:"data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "standard", body.Data.Branch)
	assert.Nil(t, body.Data.Data)
	assert.Zero(t, board.gridReads, "only admins read the grid")
}

func TestBoardHandler_ContactAdminGetsGrid(t *testing.T) {
	board := &fakeBoardUC{contacts: []entity.ContactMessage{{ID: 1, Name: "Asha Rao"}}}
	admin := entity.Session{Authenticated: true, Role: entity.RoleAdmin}
	h := boardHandler(admin, board)

	c, rec := newTestContext(t, http.MethodGet, "/contact?search=asha&direction=desc&page=3")
	require.NoError(t, h.Contact(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, board.gridReads)
	assert.Equal(t, "asha", board.params.Search)
	assert.Equal(t, pagelist.Descending, board.params.Direction)
	assert.Equal(t, 3, board.params.Page)
}

func postJSONContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBoardHandler_SubmitFeedback(t *testing.T) {
	board := &fakeBoardUC{}
	h := boardHandler(entity.GuestSession(), board)

	c, rec := postJSONContext(`{"message":"Great tiffins"}`)
	require.NoError(t, h.SubmitFeedback(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"Great tiffins"}, board.feedbacks)
}

func TestBoardHandler_SubmitFeedbackRequiresMessage(t *testing.T) {
	board := &fakeBoardUC{}
	h := boardHandler(entity.GuestSession(), board)

	c, rec := postJSONContext(`{"message":""}`)
	require.NoError(t, h.SubmitFeedback(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, board.feedbacks)
}
