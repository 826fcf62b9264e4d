package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/GregMSThompson/userdata-api/internal/errs"
	"github.com/GregMSThompson/userdata-api/internal/models"
)

type mongoDatabase interface {
	Database(ctx context.Context) (*mongo.Database, error)
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
}

func (d userDocument) toModel() *models.User {
	return &models.User{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
	}
}

type mongoUserStore struct {
	conn mongoDatabase
}

func NewMongoUserStore(conn mongoDatabase) *mongoUserStore {
	return &mongoUserStore{conn: conn}
}

// collection goes through the connector on every call; connection failures
// are returned untouched as *errs.ConnectionError.
func (s *mongoUserStore) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := s.conn.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(UserCollection), nil
}

func (s *mongoUserStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list users", err)
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to decode users", err)
	}

	users := make([]*models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}
	return users, nil
}

func (s *mongoUserStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewNotFoundError("user not found")
	}
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	var doc userDocument
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get user", err)
	}
	return doc.toModel(), nil
}

func (s *mongoUserStore) CreateUser(ctx context.Context, user *models.User) error {
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, userDocument{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
	if err != nil {
		return errs.NewDatabaseError("create", "failed to insert user", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errs.NewDatabaseError("create", "store returned a non ObjectID id", nil)
	}
	user.ID = oid.Hex()
	return nil
}

// UpdateUser sets the given fields and returns the document as it is after
// the write. An empty change set reads the document instead of writing.
func (s *mongoUserStore) UpdateUser(ctx context.Context, id string, changes map[string]string) (*models.User, error) {
	if len(changes) == 0 {
		return s.GetUser(ctx, id)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewNotFoundError("user not found")
	}
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for field, v := range changes {
		set[field] = v
	}

	var doc userDocument
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("update", "failed to update user", err)
	}
	return doc.toModel(), nil
}

// DeleteUser reports whether exactly one document was removed.
func (s *mongoUserStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, errs.NewValidationError("invalid user id")
	}
	coll, err := s.collection(ctx)
	if err != nil {
		return false, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, errs.NewDatabaseError("delete", "failed to delete user", err)
	}
	return res.DeletedCount == 1, nil
}
