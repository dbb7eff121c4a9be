package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/mannsoni/portfolio/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAdminReader(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	adminID := uuid.New()
	admin := &models.AdminDB{AdminID: adminID, Email: "admin@example.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		email     string
		loginPass string
		admin     *models.AdminDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
	}{
		{
			name:      "successful login",
			email:     "admin@example.com",
			loginPass: password,
			admin:     admin,
			expectJWT: "token123",
		},
		{
			name:      "unknown email",
			email:     "nobody@example.com",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "admin@example.com",
			loginPass: "wrong",
			admin:     admin,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "admin@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			email:     "admin@example.com",
			loginPass: password,
			admin:     admin,
			jwtErr:    errors.New("jwt fail"),
			wantErr:   errors.New("jwt fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.admin, tt.readerErr)

			if tt.admin != nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), adminID, tt.admin.Email).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_UnknownAndWrongPasswordMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAdminReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockTokenGenerator(ctrl))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "a@example.com").
		Return(&models.AdminDB{AdminID: uuid.New(), Email: "a@example.com", PasswordHash: string(hashed)}, nil)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "b@example.com").Return(nil, nil)

	_, wrongPass := svc.Login(context.Background(), "a@example.com", "wrong")
	_, unknown := svc.Login(context.Background(), "b@example.com", "wrong")

	assert.Equal(t, wrongPass, unknown)
}
