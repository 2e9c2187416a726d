package repository

import (
	"context"

	"peopleRegistry/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	EnsureSchema(ctx context.Context) error
	Add(ctx context.Context, name, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, name, email string) error
	Delete(ctx context.Context, id int64) error
}

var _ UserRepositoryI = (*UserRepository)(nil)
