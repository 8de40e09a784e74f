package repository

import (
	"goatgrids/internal/model"
)

type ProductRepository interface {
	All() ([]model.Product, error)
	FindByID(id string) (*model.Product, error)
	Create(product *model.Product) error
	Update(id string, mutate func(*model.Product)) (*model.Product, error)
	Delete(id string) (*model.Product, error)
}

type productRepoImpl struct {
	products *Collection[model.Product]
}

func NewProductRepository(dataPath string) ProductRepository {
	return &productRepoImpl{
		products: NewCollection[model.Product](dataPath, "products"),
	}
}

func (r *productRepoImpl) All() ([]model.Product, error) {
	return r.products.Load()
}

func (r *productRepoImpl) FindByID(id string) (*model.Product, error) {
	products, err := r.products.Load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *productRepoImpl) Create(product *model.Product) error {
	products, err := r.products.Load()
	if err != nil {
		return err
	}
	products = append(products, *product)
	return r.products.Save(products)
}

func (r *productRepoImpl) Update(id string, mutate func(*model.Product)) (*model.Product, error) {
	products, err := r.products.Load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			mutate(&products[i])
			if err := r.products.Save(products); err != nil {
				return nil, err
			}
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *productRepoImpl) Delete(id string) (*model.Product, error) {
	products, err := r.products.Load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			deleted := products[i]
			products = append(products[:i], products[i+1:]...)
			if err := r.products.Save(products); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, ErrNotFound
}
