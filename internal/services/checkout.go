package services

import (
	"context"

	"gorm.io/gorm"

	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
)

// Checkout turns the cart into a closed order priced at the current product
// prices and empties the cart. Either everything commits or nothing does.
func (s *storefront) Checkout(ctx context.Context, cartID uint) (*store.Order, error) {
	op := "storefront.checkout"
	var order *store.Order
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		cart, err := s.repos.ShoppingCarts.GetByID(ctx, tx, cartID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return domainagg.NewError(domainagg.CodeValidation, op, "shopping cart is empty", nil)
		}

		order, err = s.repos.Orders.Add(ctx, tx, store.NewOrder(&store.Customer{CustomerID: cart.CustomerID}))
		if err != nil {
			return err
		}
		order.Items = make([]*store.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			product := it.Product
			if product == nil {
				if product, err = s.repos.Products.GetByID(ctx, tx, it.ProductID); err != nil {
					return err
				}
			}
			order.Items = append(order.Items, store.NewOrderItem(order, product, it.Quantity))
		}
		if err := order.Close(); err != nil {
			return domainagg.NewError(domainagg.CodePreconditionFailed, op, err.Error(), err)
		}
		if _, err := s.repos.Orders.Update(ctx, tx, order); err != nil {
			return err
		}

		cart.Items = []*store.ShoppingCartItem{}
		if _, err := s.repos.ShoppingCarts.Update(ctx, tx, cart); err != nil {
			return err
		}

		order, err = s.repos.Orders.GetByID(ctx, tx, order.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("checkout completed", "order_id", order.OrderID, "customer_id", order.CustomerID, "lines", len(order.Items))
	return order, nil
}

func (s *storefront) Orders(ctx context.Context, customerID uint) ([]*store.Order, error) {
	return s.repos.Orders.GetByCustomerID(ctx, nil, customerID)
}

func (s *storefront) Order(ctx context.Context, orderID uint) (*store.Order, error) {
	return s.repos.Orders.GetByID(ctx, nil, orderID)
}
