package tile

import (
	"fmt"
	"time"

	"github.com/yungbote/mystore-backend/internal/domain/store"
)

const (
	cartMessage    = "You have %d items in your shopping cart"
	WelcomeMessage = "Welcome to My Store App! Step in and find the best deals on the market!"
)

// Snapshot is the cart state a tile and badge are rendered from.
type Snapshot struct {
	CartID        uint      `json:"cart_id"`
	ItemsQuantity int       `json:"count"`
	Lines         int       `json:"lines"`
	Message       string    `json:"message"`
	TakenAt       time.Time `json:"updated_at"`
}

// Message is the tile text for a cart holding lines distinct products
// and quantity items in total.
func Message(lines, quantity int) string {
	if lines > 0 {
		return fmt.Sprintf(cartMessage, quantity)
	}
	return WelcomeMessage
}

func TakeSnapshot(cart *store.ShoppingCart, now time.Time) Snapshot {
	snap := Snapshot{TakenAt: now.UTC()}
	if cart != nil {
		snap.CartID = cart.ShoppingCartID
		snap.ItemsQuantity = cart.ItemsQuantity()
		snap.Lines = len(cart.Items)
	}
	snap.Message = Message(snap.Lines, snap.ItemsQuantity)
	return snap
}
