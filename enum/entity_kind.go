package enum

// EntityKind tags the domain object a notification was caused by.
// Together with the stored object id it replaces an untyped foreign key.
type EntityKind string

const (
	EntityKindJob      EntityKind = "job"
	EntityKindProposal EntityKind = "proposal"
	EntityKindContract EntityKind = "contract"
	EntityKindPayment  EntityKind = "payment"
	EntityKindReview   EntityKind = "review"
)
