package repository

import (
	"sort"

	"goatgrids/internal/model"
)

type GalleryRepository interface {
	// All returns the images sorted by display order.
	All() ([]model.GalleryImage, error)
	Create(image *model.GalleryImage) error
	Count() (int, error)
	UpdateAlt(id, alt string) (*model.GalleryImage, error)
	Reorder(orders map[string]int) ([]model.GalleryImage, error)
	// Delete removes an image and renumbers the remaining ones back to a
	// contiguous 0..n-1 sequence, preserving relative order.
	Delete(id string) (*model.GalleryImage, error)
}

type galleryRepoImpl struct {
	gallery *Collection[model.GalleryImage]
}

func NewGalleryRepository(dataPath string) GalleryRepository {
	return &galleryRepoImpl{
		gallery: NewCollection[model.GalleryImage](dataPath, "gallery"),
	}
}

func (r *galleryRepoImpl) All() ([]model.GalleryImage, error) {
	images, err := r.gallery.Load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(images, func(i, j int) bool { return images[i].Order < images[j].Order })
	return images, nil
}

func (r *galleryRepoImpl) Create(image *model.GalleryImage) error {
	images, err := r.gallery.Load()
	if err != nil {
		return err
	}
	images = append(images, *image)
	return r.gallery.Save(images)
}

func (r *galleryRepoImpl) Count() (int, error) {
	images, err := r.gallery.Load()
	if err != nil {
		return 0, err
	}
	return len(images), nil
}

func (r *galleryRepoImpl) UpdateAlt(id, alt string) (*model.GalleryImage, error) {
	images, err := r.gallery.Load()
	if err != nil {
		return nil, err
	}
	for i := range images {
		if images[i].ID == id {
			if alt != "" {
				images[i].Alt = alt
			}
			if err := r.gallery.Save(images); err != nil {
				return nil, err
			}
			return &images[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *galleryRepoImpl) Reorder(orders map[string]int) ([]model.GalleryImage, error) {
	images, err := r.gallery.Load()
	if err != nil {
		return nil, err
	}
	for i := range images {
		if order, ok := orders[images[i].ID]; ok {
			images[i].Order = order
		}
	}
	if err := r.gallery.Save(images); err != nil {
		return nil, err
	}
	sort.SliceStable(images, func(i, j int) bool { return images[i].Order < images[j].Order })
	return images, nil
}

func (r *galleryRepoImpl) Delete(id string) (*model.GalleryImage, error) {
	images, err := r.gallery.Load()
	if err != nil {
		return nil, err
	}
	for i := range images {
		if images[i].ID == id {
			deleted := images[i]
			images = append(images[:i], images[i+1:]...)
			sort.SliceStable(images, func(a, b int) bool { return images[a].Order < images[b].Order })
			for j := range images {
				images[j].Order = j
			}
			if err := r.gallery.Save(images); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, ErrNotFound
}
