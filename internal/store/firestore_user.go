package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/userdata-api/internal/errs"
	"github.com/GregMSThompson/userdata-api/internal/models"
)

type firestoreUserStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewFirestoreUserStore(client *firestore.Client) *firestoreUserStore {
	return &firestoreUserStore{
		Client:     client,
		Collection: client.Collection(UserCollection),
	}
}

func (s *firestoreUserStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	iter := s.Collection.Documents(ctx)
	defer iter.Stop()

	users := make([]*models.User, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list users", err)
		}
		u, err := userFromSnapshot(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *firestoreUserStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	if !validDocumentID(id) {
		return nil, errs.NewNotFoundError("user not found")
	}

	doc, err := s.Collection.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get user", err)
	}
	return userFromSnapshot(doc)
}

func (s *firestoreUserStore) CreateUser(ctx context.Context, user *models.User) error {
	ref, _, err := s.Collection.Add(ctx, user)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to insert user", err)
	}
	user.ID = ref.ID
	return nil
}

// UpdateUser reads and writes inside one transaction so the returned user is
// the state the update produced.
func (s *firestoreUserStore) UpdateUser(ctx context.Context, id string, changes map[string]string) (*models.User, error) {
	if !validDocumentID(id) {
		return nil, errs.NewNotFoundError("user not found")
	}
	if len(changes) == 0 {
		return s.GetUser(ctx, id)
	}
	ref := s.Collection.Doc(id)

	var updated *models.User
	err := s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		u, err := userFromSnapshot(doc)
		if err != nil {
			return err
		}

		updates := make([]firestore.Update, 0, len(changes))
		for field, v := range changes {
			updates = append(updates, firestore.Update{Path: field, Value: v})
		}
		applyChanges(u, changes)
		updated = u
		return tx.Update(ref, updates)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, errs.NewDatabaseError("update", "failed to update user", err)
	}
	return updated, nil
}

// DeleteUser deletes with an exists precondition so a missing document is
// reported as false instead of a silent no-op.
func (s *firestoreUserStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	if !validDocumentID(id) {
		return false, errs.NewValidationError("invalid user id")
	}

	_, err := s.Collection.Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound, codes.FailedPrecondition:
			return false, nil
		}
		return false, errs.NewDatabaseError("delete", "failed to delete user", err)
	}
	return true, nil
}

func userFromSnapshot(doc *firestore.DocumentSnapshot) (*models.User, error) {
	var u models.User
	if err := doc.DataTo(&u); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse user data", err)
	}
	u.ID = doc.Ref.ID
	return &u, nil
}
