package store

import (
	"context"
	"strings"

	"github.com/GregMSThompson/userdata-api/internal/dto"
	"github.com/GregMSThompson/userdata-api/internal/models"
)

// UserCollection holds every user document, whatever the driver.
const UserCollection = "userdata"

// UserStore is the contract shared by the mongo, firestore and memory drivers.
type UserStore interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id string, changes map[string]string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

func applyChanges(u *models.User, changes map[string]string) {
	for field, v := range changes {
		switch field {
		case dto.FieldFirstName:
			u.FirstName = v
		case dto.FieldLastName:
			u.LastName = v
		case dto.FieldEmail:
			u.Email = v
		}
	}
}

// validDocumentID reports whether id can name a single document in the
// collection. Firestore rejects empty ids, "." and "..", and ids containing a
// slash, which would address a nested path instead.
func validDocumentID(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.Contains(id, "/")
}
