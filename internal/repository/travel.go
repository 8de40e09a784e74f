package repository

import (
	"goatgrids/internal/model"
)

type TravelPostRepository interface {
	All() ([]model.TravelPost, error)
	FindByID(id string) (*model.TravelPost, error)
	FindByMember(memberID string) ([]model.TravelPost, error)
	Create(post *model.TravelPost) error
	Update(id string, mutate func(*model.TravelPost)) (*model.TravelPost, error)
	Delete(id string) (*model.TravelPost, error)
}

type travelPostRepoImpl struct {
	posts *Collection[model.TravelPost]
}

func NewTravelPostRepository(dataPath string) TravelPostRepository {
	return &travelPostRepoImpl{
		posts: NewCollection[model.TravelPost](dataPath, "travel-posts"),
	}
}

func (r *travelPostRepoImpl) All() ([]model.TravelPost, error) {
	return r.posts.Load()
}

func (r *travelPostRepoImpl) FindByID(id string) (*model.TravelPost, error) {
	posts, err := r.posts.Load()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *travelPostRepoImpl) FindByMember(memberID string) ([]model.TravelPost, error) {
	posts, err := r.posts.Load()
	if err != nil {
		return nil, err
	}
	matched := make([]model.TravelPost, 0)
	for i := range posts {
		if posts[i].MemberID == memberID {
			matched = append(matched, posts[i])
		}
	}
	return matched, nil
}

func (r *travelPostRepoImpl) Create(post *model.TravelPost) error {
	posts, err := r.posts.Load()
	if err != nil {
		return err
	}
	posts = append(posts, *post)
	return r.posts.Save(posts)
}

func (r *travelPostRepoImpl) Update(id string, mutate func(*model.TravelPost)) (*model.TravelPost, error) {
	posts, err := r.posts.Load()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			mutate(&posts[i])
			if err := r.posts.Save(posts); err != nil {
				return nil, err
			}
			return &posts[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *travelPostRepoImpl) Delete(id string) (*model.TravelPost, error) {
	posts, err := r.posts.Load()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			deleted := posts[i]
			posts = append(posts[:i], posts[i+1:]...)
			if err := r.posts.Save(posts); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, ErrNotFound
}
