package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/felirami/neetme/internal/models"
	"github.com/felirami/neetme/internal/services"
)

func TestAuthenticateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "temp_abc"}

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockAuthenticator)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"address":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed").
					Return(user, "token-abc", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "InvalidAddress",
			body: `{"address":"bogus"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "bogus").
					Return(nil, "", services.ErrInvalidAddress)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "BadJSON",
			body:           `{not json`,
			mockSetup:      func(m *MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "InternalError",
			body: `{"address":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(nil, "", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockAuth)

			handler := NewAuthenticateHandler(mockAuth)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/user", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp AuthResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "token-abc", resp.Token)
				assert.Equal(t, userID.String(), resp.User.ID)
				assert.Equal(t, "temp_abc", resp.User.Username)
			}
		})
	}
}
