package gorm

import (
	"gorm.io/gorm"

	"github.com/Torxed/coreborn-api/pkg/db"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

// Ensure ModerationStore implements store.ModerationStore
var _ store.ModerationStore = (*ModerationStore)(nil)

// ModerationStore implements store.ModerationStore using GORM
type ModerationStore struct {
	db *gorm.DB
}

// NewModerationStore creates a new ModerationStore
func NewModerationStore(db *gorm.DB) *ModerationStore {
	return &ModerationStore{db: db}
}

// Report records a removal report and decides deletion inside a single
// transaction. The unique constraint on (position_id, reporter_id) keeps
// repeat reports from raising the tally, and the distinct count plus
// delete run atomically so racing reporters cannot double-delete.
func (s *ModerationStore) Report(resourceName string, positionID int64, reporterID int64, quorum int, force bool) (store.Decision, error) {
	decision := store.DecisionPending
	err := db.RetryOnce(func() error {
		decision = store.DecisionPending
		return s.db.Transaction(func(tx *gorm.DB) error {
			var row struct {
				ID           int64
				ResourceName string
			}
			res := tx.Raw(
				`SELECT p.id, r.name AS resource_name
				 FROM positions p
				 JOIN resources r ON r.id = p.resource_id
				 WHERE p.id = ?`,
				positionID,
			).Scan(&row)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Already gone. Removal is idempotent.
				decision = store.DecisionDeleted
				return nil
			}
			if row.ResourceName != resourceName {
				return store.ErrUnknownContribution
			}

			if err := tx.Exec(
				`INSERT INTO removal_reports (position_id, reporter_id)
				 VALUES (?, ?)
				 ON CONFLICT (position_id, reporter_id) DO NOTHING`,
				positionID, reporterID,
			).Error; err != nil {
				return err
			}

			var reporters int
			if err := tx.Raw(
				`SELECT COUNT(DISTINCT reporter_id) FROM removal_reports WHERE position_id = ?`,
				positionID,
			).Scan(&reporters).Error; err != nil {
				return err
			}

			if !force && reporters < quorum {
				return nil
			}

			if err := tx.Exec(`DELETE FROM positions WHERE id = ?`, positionID).Error; err != nil {
				return err
			}
			if err := tx.Exec(`DELETE FROM removal_reports WHERE position_id = ?`, positionID).Error; err != nil {
				return err
			}
			decision = store.DecisionDeleted
			return nil
		})
	})
	if err != nil {
		return store.DecisionPending, storageErr(err)
	}
	return decision, nil
}
