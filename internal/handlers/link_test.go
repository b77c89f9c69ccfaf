package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/felirami/neetme/internal/models"
	"github.com/felirami/neetme/internal/services"
)

func TestListLinksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("ReturnsOrderedLinks", func(t *testing.T) {
		links := []models.LinkDB{
			{LinkID: uuid.New(), UserID: userID, Title: "GitHub", URL: "https://github.com/alice", Position: 0},
			{LinkID: uuid.New(), UserID: userID, Title: "Blog", URL: "https://blog.example.com", Position: 2},
		}
		mockLister := NewMockLinkLister(ctrl)
		mockLister.EXPECT().List(gomock.Any(), userID).Return(links, nil)

		handler := NewListLinksHandler(mockLister)

		req := authedRequest(http.MethodGet, "/api/links", "", userID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []LinkResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, 0, resp[0].Order)
		assert.Equal(t, 2, resp[1].Order)
	})

	t.Run("Empty", func(t *testing.T) {
		mockLister := NewMockLinkLister(ctrl)
		mockLister.EXPECT().List(gomock.Any(), userID).Return(nil, nil)

		handler := NewListLinksHandler(mockLister)

		req := authedRequest(http.MethodGet, "/api/links", "", userID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestAddLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		created := &models.LinkDB{LinkID: uuid.New(), UserID: userID, Title: "GitHub", URL: "https://github.com/alice", Position: 0}
		mockAppender := NewMockLinkAppender(ctrl)
		mockAppender.EXPECT().
			Append(gomock.Any(), userID, "GitHub", "https://github.com/alice", nil, nil, nil, nil).
			Return(created, nil)

		handler := NewAddLinkHandler(mockAppender)

		req := authedRequest(http.MethodPost, "/api/links", `{"title":"GitHub","url":"https://github.com/alice"}`, userID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp LinkResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "GitHub", resp.Title)
		assert.Equal(t, 0, resp.Order)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		handler := NewAddLinkHandler(NewMockLinkAppender(ctrl))

		req := authedRequest(http.MethodPost, "/api/links", `{"url":"https://github.com/alice"}`, userID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("MissingURL", func(t *testing.T) {
		handler := NewAddLinkHandler(NewMockLinkAppender(ctrl))

		req := authedRequest(http.MethodPost, "/api/links", `{"title":"GitHub"}`, userID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	linkID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		title := "My Blog"
		updated := &models.LinkDB{LinkID: linkID, UserID: userID, Title: "My Blog", URL: "https://blog.example.com"}
		mockUpdater := NewMockLinkUpdater(ctrl)
		mockUpdater.EXPECT().
			Update(gomock.Any(), userID, linkID, models.LinkPatch{Title: &title}).
			Return(updated, nil)

		handler := NewUpdateLinkHandler(mockUpdater)

		req := authedRequest(http.MethodPatch, "/api/links/"+linkID.String(), `{"title":"My Blog"}`, userID)
		req = withChiParam(req, "id", linkID.String())
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockUpdater := NewMockLinkUpdater(ctrl)
		mockUpdater.EXPECT().
			Update(gomock.Any(), userID, linkID, gomock.Any()).
			Return(nil, services.ErrLinkNotFound)

		handler := NewUpdateLinkHandler(mockUpdater)

		req := authedRequest(http.MethodPatch, "/api/links/"+linkID.String(), `{"title":"x"}`, userID)
		req = withChiParam(req, "id", linkID.String())
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("BadLinkID", func(t *testing.T) {
		handler := NewUpdateLinkHandler(NewMockLinkUpdater(ctrl))

		req := authedRequest(http.MethodPatch, "/api/links/nope", `{"title":"x"}`, userID)
		req = withChiParam(req, "id", "nope")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	linkID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockDeleter := NewMockLinkDeleter(ctrl)
		mockDeleter.EXPECT().Delete(gomock.Any(), userID, linkID).Return(nil)

		handler := NewDeleteLinkHandler(mockDeleter)

		req := authedRequest(http.MethodDelete, "/api/links/"+linkID.String(), "", userID)
		req = withChiParam(req, "id", linkID.String())
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "success")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockDeleter := NewMockLinkDeleter(ctrl)
		mockDeleter.EXPECT().Delete(gomock.Any(), userID, linkID).Return(services.ErrLinkNotFound)

		handler := NewDeleteLinkHandler(mockDeleter)

		req := authedRequest(http.MethodDelete, "/api/links/"+linkID.String(), "", userID)
		req = withChiParam(req, "id", linkID.String())
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
