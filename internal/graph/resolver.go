// Package graph serves the user schema through the gqlgen executor.
package graph

import (
	"context"

	"github.com/GregMSThompson/userdata-api/internal/dto"
	"github.com/GregMSThompson/userdata-api/internal/models"
	"github.com/GregMSThompson/userdata-api/pkg/helpers"
)

type userService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

// Resolver is the root resolver for the GraphQL schema.
type Resolver struct {
	UserSvc userService
}

func NewResolver(svc userService) *Resolver {
	return &Resolver{UserSvc: svc}
}

func (r *Resolver) Query() *queryResolver { return &queryResolver{r} }

func (r *Resolver) Mutation() *mutationResolver { return &mutationResolver{r} }

type queryResolver struct{ *Resolver }

func (r *queryResolver) GetUsers(ctx context.Context) ([]*models.User, error) {
	return r.UserSvc.ListUsers(ctx)
}

func (r *queryResolver) GetUser(ctx context.Context, id string) (*models.User, error) {
	return r.UserSvc.GetUser(ctx, id)
}

type mutationResolver struct{ *Resolver }

// AddUser also serves createUser.
func (r *mutationResolver) AddUser(ctx context.Context, firstName, lastName, email string) (*models.User, error) {
	return r.UserSvc.CreateUser(ctx, dto.CreateUserRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	})
}

func (r *mutationResolver) DeleteUser(ctx context.Context, id string) (bool, error) {
	return r.UserSvc.DeleteUser(ctx, id)
}

// UpdateUser treats nil (argument omitted or explicit null) as absent.
func (r *mutationResolver) UpdateUser(ctx context.Context, id string, firstName, lastName, email *string) (*models.User, error) {
	return r.UserSvc.UpdateUser(ctx, dto.UpdateUserRequest{
		ID:        id,
		FirstName: helpers.FromPtr(firstName),
		LastName:  helpers.FromPtr(lastName),
		Email:     helpers.FromPtr(email),
	})
}
