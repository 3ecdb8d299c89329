// Package store holds the storefront entity model: catalogs and their products,
// customers, orders and order items, shopping carts and cart items.
//
// Entities compare by identity, never by value: every type exposes IdentityKey,
// and child collection items additionally expose ParentKey, the owning
// aggregate's id, which bounds reconciliation to siblings.
package store
