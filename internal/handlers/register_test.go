package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/apriyandi/timbangan-api/internal/models"
	"github.com/apriyandi/timbangan-api/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		reqBody         RegisterRequest
		rawBody         string // when set, sent as-is instead of reqBody
		mockSetup       func(m *MockRegisterer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				Name:        "Siti Rahma",
				ChildName:   "Budi",
				PhoneNumber: "081234567890",
				Email:       "siti@example.com",
				Password:    "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Siti Rahma", "Budi", "081234567890", "siti@example.com", "secret123").
					Return(&models.UserDB{ID: 1, Name: "Siti Rahma", Email: "siti@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "email already registered",
			reqBody: RegisterRequest{
				Name:        "Siti Rahma",
				ChildName:   "Budi",
				PhoneNumber: "081234567890",
				Email:       "siti@example.com",
				Password:    "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Email is already registered!",
		},
		{
			name: "missing fields",
			reqBody: RegisterRequest{
				Email:    "not-an-email",
				Password: "pw",
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "invalid json",
			rawBody:         "{invalid json}",
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "internal error",
			reqBody: RegisterRequest{
				Name:        "Siti Rahma",
				ChildName:   "Budi",
				PhoneNumber: "081234567890",
				Email:       "siti@example.com",
				Password:    "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "An error occurred! Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var buf *bytes.Buffer
			if tt.rawBody != "" {
				buf = bytes.NewBufferString(tt.rawBody)
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				buf = bytes.NewBuffer(bodyBytes)
			}
			req := httptest.NewRequest(http.MethodPost, "/auth/register", buf)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp["message"])
			} else {
				assert.Equal(t, "siti@example.com", resp["email"])
				assert.NotContains(t, resp, "password")
			}
		})
	}
}
