package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
)

const BirthDateLayout = "2006-01-02"

// CustomerPatch carries the editable profile fields; nil fields are left as is.
// An empty Email clears it.
type CustomerPatch struct {
	FirstName *string
	LastName  *string
	BirthDate *datatypes.Date
	Email     *string
}

// ParseBirthDate reads a YYYY-MM-DD date.
func ParseBirthDate(raw string) (datatypes.Date, error) {
	t, err := time.Parse(BirthDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("birth date %q: want %s", raw, BirthDateLayout)
	}
	return datatypes.Date(t), nil
}

func (p CustomerPatch) apply(c *store.Customer) {
	if p.FirstName != nil {
		c.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		c.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.BirthDate != nil {
		d := *p.BirthDate
		c.BirthDate = &d
	}
	if p.Email != nil {
		c.Email = strings.TrimSpace(*p.Email)
	}
}

func (s *storefront) UpdateCustomer(ctx context.Context, customerID uint, patch CustomerPatch) (*store.Customer, error) {
	op := "storefront.update_customer"
	if patch.BirthDate != nil && time.Time(*patch.BirthDate).After(s.now()) {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "birth date is in the future", nil)
	}
	var customer *store.Customer
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repos.Customers.GetByID(ctx, tx, customerID)
		if err != nil {
			return err
		}
		patch.apply(found)
		if _, err := s.repos.Customers.Update(ctx, tx, found); err != nil {
			return err
		}
		customer = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("customer updated", "customer_id", customerID)
	return customer, nil
}
