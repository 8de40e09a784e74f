package repository

import (
	"goatgrids/internal/model"
)

type OrderRepository interface {
	All() ([]model.Order, error)
	FindByID(id string) (*model.Order, error)
	FindByCheckoutID(checkoutID string) (*model.Order, error)
	Create(order *model.Order) error
	Update(id string, mutate func(*model.Order)) (*model.Order, error)
	Delete(id string) (*model.Order, error)
}

type orderRepoImpl struct {
	orders *Collection[model.Order]
}

func NewOrderRepository(dataPath string) OrderRepository {
	return &orderRepoImpl{
		orders: NewCollection[model.Order](dataPath, "orders"),
	}
}

func (r *orderRepoImpl) All() ([]model.Order, error) {
	return r.orders.Load()
}

func (r *orderRepoImpl) FindByID(id string) (*model.Order, error) {
	orders, err := r.orders.Load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *orderRepoImpl) FindByCheckoutID(checkoutID string) (*model.Order, error) {
	if checkoutID == "" {
		return nil, ErrNotFound
	}
	orders, err := r.orders.Load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].YocoCheckoutID == checkoutID {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *orderRepoImpl) Create(order *model.Order) error {
	orders, err := r.orders.Load()
	if err != nil {
		return err
	}
	orders = append(orders, *order)
	return r.orders.Save(orders)
}

func (r *orderRepoImpl) Update(id string, mutate func(*model.Order)) (*model.Order, error) {
	orders, err := r.orders.Load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			mutate(&orders[i])
			if err := r.orders.Save(orders); err != nil {
				return nil, err
			}
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *orderRepoImpl) Delete(id string) (*model.Order, error) {
	orders, err := r.orders.Load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			deleted := orders[i]
			orders = append(orders[:i], orders[i+1:]...)
			if err := r.orders.Save(orders); err != nil {
				return nil, err
			}
			return &deleted, nil
		}
	}
	return nil, ErrNotFound
}
