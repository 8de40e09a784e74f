package repository

import (
	"strings"

	"goatgrids/internal/model"
)

type MemberRepository interface {
	FindByID(id string) (*model.Member, error)
	// FindByEmail matches case-insensitively; emails are stored lowercased.
	FindByEmail(email string) (*model.Member, error)
	Create(member *model.Member) error
	Update(id string, mutate func(*model.Member)) (*model.Member, error)
}

type memberRepoImpl struct {
	members *Collection[model.Member]
}

func NewMemberRepository(dataPath string) MemberRepository {
	return &memberRepoImpl{
		members: NewCollection[model.Member](dataPath, "members"),
	}
}

func (r *memberRepoImpl) FindByID(id string) (*model.Member, error) {
	members, err := r.members.Load()
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *memberRepoImpl) FindByEmail(email string) (*model.Member, error) {
	members, err := r.members.Load()
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	for i := range members {
		if strings.ToLower(members[i].Email) == email {
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *memberRepoImpl) Create(member *model.Member) error {
	members, err := r.members.Load()
	if err != nil {
		return err
	}
	members = append(members, *member)
	return r.members.Save(members)
}

func (r *memberRepoImpl) Update(id string, mutate func(*model.Member)) (*model.Member, error) {
	members, err := r.members.Load()
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			mutate(&members[i])
			if err := r.members.Save(members); err != nil {
				return nil, err
			}
			return &members[i], nil
		}
	}
	return nil, ErrNotFound
}
