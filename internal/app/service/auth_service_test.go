package service

import (
	"context"
	"testing"
	"time"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/repository"
	"github.com/designxpo/poonam-cosmetics-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewAuthService(repository.NewUserRepository(testDB), AuthConfig{
		JWTSecret:     "test-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAuthService_Register(t *testing.T) {
	service := setupAuthServiceTest(t)

	user, pair, err := service.Register("Priya@Example.com", "supersecret", "Priya", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// Emails are unique regardless of casing.
	_, _, err = service.Register("priya@example.com", "another", "Priya", "9876543210")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	service := setupAuthServiceTest(t)

	_, _, err := service.Register("priya@example.com", "supersecret", "Priya", "9876543210")
	require.NoError(t, err)

	user, pair, err := service.Login("priya@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.NotEmpty(t, pair.AccessToken)

	_, _, err = service.Login("priya@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email reports the same error as wrong password.
	_, _, err = service.Login("nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	service := setupAuthServiceTest(t)

	_, pair, err := service.Register("priya@example.com", "supersecret", "Priya", "9876543210")
	require.NoError(t, err)

	fresh, err := service.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// Access tokens are not accepted where a refresh token is required.
	_, err = service.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = service.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	service := setupAuthServiceTest(t)

	// A garbage token has nothing to blacklist and is not an error.
	assert.NoError(t, service.Logout(context.Background(), "not-a-token"))
}

func TestAuthService_UpdateProfile(t *testing.T) {
	service := setupAuthServiceTest(t)

	user, _, err := service.Register("priya@example.com", "supersecret", "Priya", "9876543210")
	require.NoError(t, err)

	address := model.Address{Street: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001"}
	updated, err := service.UpdateProfile(user.ID, ProfileUpdate{
		Name: "Priya Sharma", Phone: "9876543211", Address: &address,
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", updated.Name)
	assert.Equal(t, "Pune", updated.Address.City)

	// Nil address leaves the saved one untouched.
	updated, err = service.UpdateProfile(user.ID, ProfileUpdate{Name: "Priya S", Phone: "9876543211"})
	require.NoError(t, err)
	assert.Equal(t, "Pune", updated.Address.City)

	tests := []struct {
		name    string
		update  ProfileUpdate
		wantErr error
	}{
		{
			name:    "Blank name",
			update:  ProfileUpdate{Name: "  ", Phone: "9876543211"},
			wantErr: ErrNamePhoneRequired,
		},
		{
			name:    "Blank phone",
			update:  ProfileUpdate{Name: "Priya", Phone: ""},
			wantErr: ErrNamePhoneRequired,
		},
		{
			name: "Partial address",
			update: ProfileUpdate{
				Name: "Priya", Phone: "9876543211",
				Address: &model.Address{City: "Pune"},
			},
			wantErr: ErrIncompleteAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpdateProfile(user.ID, tt.update)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// An empty address clears the saved one.
	updated, err = service.UpdateProfile(user.ID, ProfileUpdate{
		Name: "Priya", Phone: "9876543211", Address: &model.Address{},
	})
	require.NoError(t, err)
	assert.True(t, updated.Address.IsEmpty())

	_, err = service.GetProfile(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
