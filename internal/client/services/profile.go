package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gymtrack/internal/client/client"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
	"github.com/dmitrijs2005/gymtrack/internal/client/validation"
)

// MaxPhotoSize is the largest profile photo accepted for upload.
const MaxPhotoSize = 5 << 20

var ErrPhotoTooLarge = errors.New("photo too large")

// ProfileService changes the signed-in user's profile. The local session is
// updated only after the backend accepted the change.
type ProfileService struct {
	auth   *AuthService
	client client.Client
}

func NewProfileService(auth *AuthService, c client.Client) *ProfileService {
	return &ProfileService{auth: auth, client: c}
}

// Update validates form, sends it to the backend and publishes the new name.
func (s *ProfileService) Update(ctx context.Context, form validation.ProfileForm) (*models.User, error) {
	if err := validation.Validate(form); err != nil {
		return nil, err
	}

	current := s.auth.User()
	if current == nil {
		return nil, ErrNotAuthenticated
	}

	update := models.ProfileUpdate{Name: form.Name}
	if form.ChangesPassword() {
		update.Password = form.Password
		update.OldPassword = form.OldPassword
	}

	err := s.auth.WithSession(ctx, func(ctx context.Context) error {
		return s.client.UpdateUser(ctx, update)
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	current.Name = form.Name
	if err := s.auth.UpdateProfile(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// UpdatePhoto uploads the file at path as the user's avatar.
func (s *ProfileService) UpdatePhoto(ctx context.Context, path string) (*models.User, error) {
	current := s.auth.User()
	if current == nil {
		return nil, ErrNotAuthenticated
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat photo: %w", err)
	}
	if info.IsDir() {
		return nil, validation.Failure("avatar", "Choose a photo file, not a directory")
	}
	if info.Size() > MaxPhotoSize {
		return nil, fmt.Errorf("%w: %w", ErrPhotoTooLarge,
			validation.Failure("avatar", "This image is too large. Choose one of up to 5MB"))
	}

	var uploaded *models.User
	err = s.auth.WithSession(ctx, func(ctx context.Context) (err error) {
		uploaded, err = s.client.UploadAvatar(ctx, path, f)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	current.Avatar = uploaded.Avatar
	if err := s.auth.UpdateProfile(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// AvatarURL locates the user's photo on the backend, or "" when none is set.
func (s *ProfileService) AvatarURL(u *models.User) string {
	if u == nil || u.Avatar == "" {
		return ""
	}
	return s.client.AssetURL(client.AssetAvatar, u.Avatar)
}
