package store

// LineKey is the composite identity of an order or shopping cart line.
type LineKey struct {
	ParentID  uint
	ProductID uint
}
