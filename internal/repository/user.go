package repository

import (
	"goatgrids/internal/model"
)

// UserRepository stores staff accounts for the admin dashboard.
type UserRepository interface {
	All() ([]model.User, error)
	FindByID(id string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Create(user *model.User) error
	UpdatePassword(id, hash string) error
}

type userRepoImpl struct {
	users *Collection[model.User]
}

func NewUserRepository(dataPath string) UserRepository {
	return &userRepoImpl{
		users: NewCollection[model.User](dataPath, "users"),
	}
}

func (r *userRepoImpl) All() ([]model.User, error) {
	return r.users.Load()
}

func (r *userRepoImpl) FindByID(id string) (*model.User, error) {
	users, err := r.users.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepoImpl) FindByUsername(username string) (*model.User, error) {
	users, err := r.users.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepoImpl) Create(user *model.User) error {
	users, err := r.users.Load()
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.users.Save(users)
}

func (r *userRepoImpl) UpdatePassword(id, hash string) error {
	users, err := r.users.Load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].Password = hash
			return r.users.Save(users)
		}
	}
	return ErrNotFound
}
