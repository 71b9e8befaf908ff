package store

// Decision is the outcome of a removal report.
type Decision int

const (
	// DecisionPending means the report was recorded and the contribution
	// retained.
	DecisionPending Decision = iota

	// DecisionDeleted means the contribution is gone, whether this
	// report deleted it, an admin forced it, or it was already deleted.
	DecisionDeleted
)

func (d Decision) String() string {
	if d == DecisionDeleted {
		return "deleted"
	}
	return "pending"
}

// ModerationStore is the removal consensus engine. It is the only writer
// that deletes position rows.
type ModerationStore interface {
	// Report records a removal report by reporterID against a position
	// of the named resource and decides deletion: quorum distinct
	// reporters, or force (admin override), deletes the position and
	// purges its reports atomically. A repeat report by the same
	// reporter never raises the tally. Reporting an id that is already
	// gone returns DecisionDeleted. An existing position id that does
	// not belong to resourceName returns ErrUnknownContribution.
	Report(resourceName string, positionID int64, reporterID int64, quorum int, force bool) (Decision, error)
}
