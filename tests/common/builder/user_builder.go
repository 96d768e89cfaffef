//go:build unit || e2e

package builder

import (
	"lesson-scheduler/internal/domain/user"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	TrainerID    *uuid.UUID
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithTrainerID(trainerID *uuid.UUID) *UserBuilder {
	u.TrainerID = trainerID
	return u
}

func (u *UserBuilder) WithoutTrainer() *UserBuilder {
	u.TrainerID = nil
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.TrainerID), nil
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        uuid.New(),
		Email:     u.Email,
		Role:      u.Role,
		TrainerID: u.TrainerID,
		IsActive:  u.IsActive,
	}
}
