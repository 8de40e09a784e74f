package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"goatgrids/internal/dto"
	"goatgrids/internal/model"
	"goatgrids/internal/repository"
)

// MaxTravelPhotos caps the photos per post.
const MaxTravelPhotos = 5

type TravelService interface {
	Feed() ([]dto.TravelPostResponse, error)
	MapPins() ([]dto.TravelMapPin, error)
	Get(id string) (*dto.TravelPostResponse, error)
	ByMember(memberID string) (*dto.MemberPostsResponse, error)
	Create(memberID, description string, photos []string, location model.Location) (*dto.TravelPostResponse, error)
	Update(memberID, postID string, req *dto.UpdateTravelPostRequest) (*dto.TravelPostResponse, error)
	Delete(memberID, postID string) (*model.TravelPost, error)
}

type travelServiceImpl struct {
	posts   repository.TravelPostRepository
	members repository.MemberRepository
}

func NewTravelService(posts repository.TravelPostRepository, members repository.MemberRepository) TravelService {
	return &travelServiceImpl{
		posts:   posts,
		members: members,
	}
}

// Feed lists all posts newest-first, each enriched with the author's public
// profile. The author lookup happens per post at read time.
func (s *travelServiceImpl) Feed() ([]dto.TravelPostResponse, error) {
	posts, err := s.posts.All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	feed := make([]dto.TravelPostResponse, 0, len(posts))
	for _, post := range posts {
		feed = append(feed, dto.TravelPostResponse{
			TravelPost: post,
			Member:     s.memberPublic(post.MemberID),
		})
	}
	return feed, nil
}

func (s *travelServiceImpl) MapPins() ([]dto.TravelMapPin, error) {
	posts, err := s.posts.All()
	if err != nil {
		return nil, err
	}

	pins := make([]dto.TravelMapPin, 0, len(posts))
	for _, post := range posts {
		if post.Location.Lat == 0 && post.Location.Lng == 0 {
			continue
		}
		pin := dto.TravelMapPin{
			ID:         post.ID,
			Location:   post.Location,
			MemberName: "Unknown",
		}
		if len(post.Photos) > 0 {
			pin.Thumbnail = post.Photos[0]
		}
		if member := s.memberPublic(post.MemberID); member != nil {
			pin.MemberName = member.DisplayName
		}
		pins = append(pins, pin)
	}
	return pins, nil
}

func (s *travelServiceImpl) Get(id string) (*dto.TravelPostResponse, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &dto.TravelPostResponse{
		TravelPost: *post,
		Member:     s.memberPublic(post.MemberID),
	}, nil
}

func (s *travelServiceImpl) ByMember(memberID string) (*dto.MemberPostsResponse, error) {
	posts, err := s.posts.FindByMember(memberID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return &dto.MemberPostsResponse{
		Member: s.memberPublic(memberID),
		Posts:  posts,
	}, nil
}

func (s *travelServiceImpl) Create(memberID, description string, photos []string, location model.Location) (*dto.TravelPostResponse, error) {
	if len(photos) == 0 {
		return nil, Validationf("At least one photo is required")
	}
	if description == "" {
		return nil, Validationf("Description is required")
	}
	if location.Lat == 0 && location.Lng == 0 {
		return nil, Validationf("Location is required")
	}

	now := time.Now().UTC()
	post := &model.TravelPost{
		ID:          uuid.NewString(),
		MemberID:    memberID,
		Description: description,
		Photos:      photos,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	return &dto.TravelPostResponse{
		TravelPost: *post,
		Member:     s.memberPublic(memberID),
	}, nil
}

func (s *travelServiceImpl) Update(memberID, postID string, req *dto.UpdateTravelPostRequest) (*dto.TravelPostResponse, error) {
	if err := s.checkOwnership(memberID, postID); err != nil {
		return nil, err
	}

	post, err := s.posts.Update(postID, func(p *model.TravelPost) {
		if req.Description != "" {
			p.Description = req.Description
		}
		if req.Lat != nil && req.Lng != nil {
			p.Location.Lat = *req.Lat
			p.Location.Lng = *req.Lng
			if req.PlaceName != "" {
				p.Location.PlaceName = req.PlaceName
			}
			if req.FormattedAddress != "" {
				p.Location.FormattedAddress = req.FormattedAddress
			}
		}
		p.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, err
	}

	return &dto.TravelPostResponse{
		TravelPost: *post,
		Member:     s.memberPublic(memberID),
	}, nil
}

func (s *travelServiceImpl) Delete(memberID, postID string) (*model.TravelPost, error) {
	if err := s.checkOwnership(memberID, postID); err != nil {
		return nil, err
	}
	return s.posts.Delete(postID)
}

func (s *travelServiceImpl) checkOwnership(memberID, postID string) error {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if post.MemberID != memberID {
		return ErrNotOwner
	}
	return nil
}

func (s *travelServiceImpl) memberPublic(memberID string) *dto.MemberPublic {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		return nil
	}
	return &dto.MemberPublic{
		ID:          member.ID,
		DisplayName: member.DisplayName,
		AvatarImage: member.AvatarImage,
	}
}
