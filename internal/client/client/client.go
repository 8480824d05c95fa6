package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/gymtrack/internal/client/models"
)

// Client is the backend API used by the services. Authenticated calls read
// the bearer token from ctx (see WithAccessToken).
type Client interface {
	CreateSession(ctx context.Context, email, password string) (*models.Session, error)
	CreateUser(ctx context.Context, user models.NewUser) error
	UpdateUser(ctx context.Context, update models.ProfileUpdate) error
	UploadAvatar(ctx context.Context, filename string, photo io.Reader) (*models.User, error)

	ListGroups(ctx context.Context) ([]string, error)
	ListExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id models.ID) (*models.Exercise, error)

	RecordHistory(ctx context.Context, exerciseID models.ID) error
	ListHistory(ctx context.Context) ([]models.HistoryByDay, error)

	AssetURL(kind AssetKind, name string) string
}

// AssetKind selects a family of static files served by the backend.
type AssetKind string

const (
	AssetExerciseThumb AssetKind = "exercise/thumb"
	AssetExerciseDemo  AssetKind = "exercise/demo"
	AssetAvatar        AssetKind = "avatar"
)
