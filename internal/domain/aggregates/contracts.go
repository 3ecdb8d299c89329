package aggregates

// WriteTxOwnership defines who owns write transaction boundaries.
type WriteTxOwnership string

const (
	// WriteTxOwnedByAggregate means aggregate write methods start/manage atomic DB transactions internally.
	WriteTxOwnedByAggregate WriteTxOwnership = "aggregate_owned"
	// WriteTxJoinsCaller means writes join the caller's transaction when one is passed in.
	WriteTxJoinsCaller WriteTxOwnership = "joins_caller"
)

// ChildPolicy describes how an aggregate persists its child collection.
type ChildPolicy string

const (
	// ChildPolicyReconcile diffs the desired children against stored rows on every write.
	ChildPolicyReconcile ChildPolicy = "reconcile"
	// ChildPolicyNone means the aggregate has no owned collection.
	ChildPolicyNone ChildPolicy = "none"
	// ChildPolicyUpsertQuantity merges duplicate line items by adding quantities.
	ChildPolicyUpsertQuantity ChildPolicy = "upsert_quantity"
)

// Contract describes aggregate-level policy expectations.
type Contract struct {
	Name             string
	Table            string
	WriteTxOwnership WriteTxOwnership
	Children         ChildPolicy
	Notes            string
}

// Aggregate is the common marker for all aggregate repositories.
// Implementations should return a stable contract description.
type Aggregate interface {
	Contract() Contract
}

// ReconcilesChildren reports whether writes diff the owned collection.
func (c Contract) ReconcilesChildren() bool {
	return c.Children == ChildPolicyReconcile
}
