package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
)

func (s *storefront) Cart(ctx context.Context, cartID uint) (*store.ShoppingCart, error) {
	return s.repos.ShoppingCarts.GetByID(ctx, nil, cartID)
}

// AddToCart adds quantity of a product, growing the existing line if any.
func (s *storefront) AddToCart(ctx context.Context, cartID, productID uint, quantity int) (*store.ShoppingCart, error) {
	op := "storefront.add_to_cart"
	if err := checkQuantity(op, quantity); err != nil {
		return nil, err
	}
	return s.mutateCart(ctx, cartID, func(tx *gorm.DB, cart *store.ShoppingCart) error {
		product, err := s.repos.Products.GetByID(ctx, tx, productID)
		if err != nil {
			return err
		}
		if line := cart.Line(productID); line != nil {
			if err := checkQuantity(op, line.Quantity+quantity); err != nil {
				return err
			}
			line.Quantity += quantity
			return nil
		}
		cart.Items = append(cart.Items, store.NewShoppingCartItem(cart, product, quantity))
		return nil
	})
}

func (s *storefront) SetQuantity(ctx context.Context, cartID, productID uint, quantity int) (*store.ShoppingCart, error) {
	op := "storefront.set_quantity"
	if err := checkQuantity(op, quantity); err != nil {
		return nil, err
	}
	return s.mutateCart(ctx, cartID, func(_ *gorm.DB, cart *store.ShoppingCart) error {
		line, err := cartLine(op, cart, productID)
		if err != nil {
			return err
		}
		line.Quantity = quantity
		return nil
	})
}

// Increment raises a line by one, stopping at MaxQuantity.
func (s *storefront) Increment(ctx context.Context, cartID, productID uint) (*store.ShoppingCart, error) {
	return s.mutateCart(ctx, cartID, func(_ *gorm.DB, cart *store.ShoppingCart) error {
		line, err := cartLine("storefront.increment", cart, productID)
		if err != nil {
			return err
		}
		if line.Quantity < MaxQuantity {
			line.Quantity++
		}
		return nil
	})
}

// Decrement lowers a line by one, stopping at MinQuantity.
func (s *storefront) Decrement(ctx context.Context, cartID, productID uint) (*store.ShoppingCart, error) {
	return s.mutateCart(ctx, cartID, func(_ *gorm.DB, cart *store.ShoppingCart) error {
		line, err := cartLine("storefront.decrement", cart, productID)
		if err != nil {
			return err
		}
		if line.Quantity > MinQuantity {
			line.Quantity--
		}
		return nil
	})
}

func (s *storefront) RemoveFromCart(ctx context.Context, cartID, productID uint) (*store.ShoppingCart, error) {
	return s.mutateCart(ctx, cartID, func(_ *gorm.DB, cart *store.ShoppingCart) error {
		for i, it := range cart.Items {
			if it.ProductID == productID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
		return domainagg.NotFound("storefront.remove_from_cart", fmt.Sprintf("Product %d in cart", productID))
	})
}

func (s *storefront) ClearCart(ctx context.Context, cartID uint) (*store.ShoppingCart, error) {
	return s.mutateCart(ctx, cartID, func(_ *gorm.DB, cart *store.ShoppingCart) error {
		cart.Items = []*store.ShoppingCartItem{}
		return nil
	})
}

func (s *storefront) CartSummary(ctx context.Context, cartID uint) (*Summary, error) {
	cart, err := s.repos.ShoppingCarts.GetByID(ctx, nil, cartID)
	if err != nil {
		return nil, err
	}
	return Summarize(cart), nil
}

// mutateCart loads the cart, applies fn, reconciles the cart and returns it
// reloaded, all in one transaction.
func (s *storefront) mutateCart(ctx context.Context, cartID uint, fn func(tx *gorm.DB, cart *store.ShoppingCart) error) (*store.ShoppingCart, error) {
	var out *store.ShoppingCart
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		cart, err := s.repos.ShoppingCarts.GetByID(ctx, tx, cartID)
		if err != nil {
			return err
		}
		if err := fn(tx, cart); err != nil {
			return err
		}
		if _, err := s.repos.ShoppingCarts.Update(ctx, tx, cart); err != nil {
			return err
		}
		out, err = s.repos.ShoppingCarts.GetByID(ctx, tx, cartID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func cartLine(op string, cart *store.ShoppingCart, productID uint) (*store.ShoppingCartItem, error) {
	line := cart.Line(productID)
	if line == nil {
		return nil, domainagg.NotFound(op, fmt.Sprintf("Product %d in cart", productID))
	}
	return line, nil
}

func checkQuantity(op string, quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return domainagg.NewError(domainagg.CodeValidation, op,
			fmt.Sprintf("quantity must be between %d and %d", MinQuantity, MaxQuantity), nil)
	}
	return nil
}
