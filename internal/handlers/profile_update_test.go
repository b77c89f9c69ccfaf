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
)

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("PartialUpdate", func(t *testing.T) {
		bio := "gm"
		mockUpdater := NewMockProfileUpdater(ctrl)
		mockUpdater.EXPECT().
			UpdateProfile(gomock.Any(), userID, models.ProfilePatch{Bio: &bio}).
			Return(&models.UserDB{UserID: userID, Username: "alice", Bio: &bio}, nil)

		handler := NewUpdateProfileHandler(mockUpdater)

		req := authedRequest(http.MethodPatch, "/api/profile", `{"bio":"gm"}`, userID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UserResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "alice", resp.Username)
		assert.NotNil(t, resp.Bio)
		assert.Equal(t, "gm", *resp.Bio)
	})

	t.Run("ClearField", func(t *testing.T) {
		empty := ""
		mockUpdater := NewMockProfileUpdater(ctrl)
		mockUpdater.EXPECT().
			UpdateProfile(gomock.Any(), userID, models.ProfilePatch{Name: &empty}).
			Return(&models.UserDB{UserID: userID, Username: "alice", Name: &empty}, nil)

		handler := NewUpdateProfileHandler(mockUpdater)

		// An explicit empty string clears the field; omitted fields stay nil.
		req := authedRequest(http.MethodPatch, "/api/profile", `{"name":""}`, userID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("BadJSON", func(t *testing.T) {
		handler := NewUpdateProfileHandler(NewMockProfileUpdater(ctrl))

		req := authedRequest(http.MethodPatch, "/api/profile", `{broken`, userID)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		handler := NewUpdateProfileHandler(NewMockProfileUpdater(ctrl))

		req := httptest.NewRequest(http.MethodPatch, "/api/profile", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
