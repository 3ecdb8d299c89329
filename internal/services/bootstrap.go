package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
)

const MainCatalogTitle = "Main"

// EnsureMainCatalog returns the first catalog with its products, creating
// the main catalog when the store has none.
func (s *storefront) EnsureMainCatalog(ctx context.Context) (*store.Catalog, error) {
	var catalog *store.Catalog
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		all, err := s.repos.Catalogs.GetAll(ctx, tx)
		if err != nil {
			return err
		}
		if len(all) > 0 {
			catalog, err = s.repos.Catalogs.GetByID(ctx, tx, all[0].CatalogID)
			return err
		}
		catalog, err = s.repos.Catalogs.Add(ctx, tx, store.NewCatalog(MainCatalogTitle))
		if err != nil {
			return err
		}
		s.log.Info("main catalog created", "catalog_id", catalog.CatalogID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func (s *storefront) EnsureCustomer(ctx context.Context, identity Identity) (*store.Customer, error) {
	var customer *store.Customer
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repos.Customers.GetByNonRoamableID(ctx, tx, identity.NonRoamableID)
		if err == nil {
			customer = found
			return nil
		}
		if !domainagg.IsCode(err, domainagg.CodeNotFound) {
			return err
		}
		customer, err = s.repos.Customers.Add(ctx, tx, &store.Customer{
			NonRoamableID: strings.TrimSpace(identity.NonRoamableID),
			FirstName:     nameOr(identity.FirstName, "John"),
			LastName:      nameOr(identity.LastName, "Doe"),
			Email:         strings.TrimSpace(identity.Email),
		})
		if err != nil {
			return err
		}
		s.log.Info("customer created", "customer_id", customer.CustomerID, "non_roamable_id", customer.NonRoamableID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *storefront) EnsureShoppingCart(ctx context.Context, customer *store.Customer) (*store.ShoppingCart, error) {
	if customer == nil || customer.CustomerID == 0 {
		return nil, domainagg.NewError(domainagg.CodeValidation, "storefront.ensure_shopping_cart", "customer is required", nil)
	}
	var cart *store.ShoppingCart
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repos.ShoppingCarts.GetByCustomerID(ctx, tx, customer.CustomerID)
		if err == nil {
			cart = found
			return nil
		}
		if !domainagg.IsCode(err, domainagg.CodeNotFound) {
			return err
		}
		cart, err = s.repos.ShoppingCarts.Add(ctx, tx, store.NewShoppingCart(customer))
		if err != nil {
			return err
		}
		cart.Items = []*store.ShoppingCartItem{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	customer.ShoppingCart = cart
	return cart, nil
}

// Bootstrap prepares the main catalog, the local customer and their cart.
func (s *storefront) Bootstrap(ctx context.Context, identity Identity) (*Session, error) {
	catalog, err := s.EnsureMainCatalog(ctx)
	if err != nil {
		return nil, err
	}
	customer, err := s.EnsureCustomer(ctx, identity)
	if err != nil {
		return nil, err
	}
	cart, err := s.EnsureShoppingCart(ctx, customer)
	if err != nil {
		return nil, err
	}
	return &Session{Customer: customer, Cart: cart, Catalog: catalog}, nil
}

// nameOr trims a name to the column width, substituting def when blank.
func nameOr(name, def string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return def
	}
	if r := []rune(name); len(r) > 50 {
		return strings.TrimSpace(string(r[:50]))
	}
	return name
}
