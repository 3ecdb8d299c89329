// Package aggregates defines domain-facing aggregate contracts and the error
// vocabulary shared by every store write boundary.
//
// These contracts avoid persistence details and describe where parent/child
// invariants (catalog/products, order/items, cart/items) are enforced atomically.
package aggregates
