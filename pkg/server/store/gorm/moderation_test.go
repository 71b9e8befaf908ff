package gorm

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/Torxed/coreborn-api/pkg/db"
	"github.com/Torxed/coreborn-api/pkg/server/store"
	gormdb "gorm.io/gorm"
)

// setupReportFixture creates an identity-attributed position and returns
// its id plus a reporter factory.
func setupReportFixture(t *testing.T, conn *gormdb.DB, tag string) (positionID int64, newReporter func(i int) int64) {
	t.Helper()

	if err := conn.Exec(
		`INSERT INTO resources (name, category) VALUES (?, 'mining') ON CONFLICT (name) DO NOTHING`,
		"testres-"+tag,
	).Error; err != nil {
		t.Fatalf("failed to create resource: %v", err)
	}

	identities := NewIdentityStore(conn)
	author, err := identities.ResolveOrCreate("author-" + tag)
	if err != nil {
		t.Fatalf("failed to create author identity: %v", err)
	}

	if err := conn.Raw(
		`INSERT INTO positions (resource_id, x, y, identity_id)
		 SELECT id, 0.25, 0.75, ? FROM resources WHERE name = ?
		 RETURNING id`,
		author.ID, "testres-"+tag,
	).Scan(&positionID).Error; err != nil {
		t.Fatalf("failed to create position: %v", err)
	}

	newReporter = func(i int) int64 {
		ident, err := identities.ResolveOrCreate(fmt.Sprintf("reporter-%s-%d", tag, i))
		if err != nil {
			t.Fatalf("failed to create reporter identity: %v", err)
		}
		return ident.ID
	}
	return positionID, newReporter
}

func positionExists(t *testing.T, conn *gormdb.DB, id int64) bool {
	t.Helper()
	var exists bool
	if err := conn.Raw(`SELECT EXISTS (SELECT 1 FROM positions WHERE id = ?)`, id).Scan(&exists).Error; err != nil {
		t.Fatalf("failed to check position: %v", err)
	}
	return exists
}

func TestModerationStoreReport(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	conn, err := db.Connect(db.Config{})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	moderation := NewModerationStore(conn)

	t.Run("three reporters leave the position pending", func(t *testing.T) {
		positionID, reporter := setupReportFixture(t, conn, "three")

		for i := 0; i < 3; i++ {
			decision, err := moderation.Report("testres-three", positionID, reporter(i), 4, false)
			if err != nil {
				t.Fatalf("report %d failed: %v", i, err)
			}
			if decision != store.DecisionPending {
				t.Fatalf("report %d: expected pending, got %s", i, decision)
			}
		}
		if !positionExists(t, conn, positionID) {
			t.Fatal("position deleted below quorum")
		}
	})

	t.Run("repeat reports by one identity never raise the tally", func(t *testing.T) {
		positionID, reporter := setupReportFixture(t, conn, "repeat")

		id := reporter(0)
		for i := 0; i < 10; i++ {
			decision, err := moderation.Report("testres-repeat", positionID, id, 4, false)
			if err != nil {
				t.Fatalf("repeat report failed: %v", err)
			}
			if decision != store.DecisionPending {
				t.Fatalf("repeat report: expected pending, got %s", decision)
			}
		}
		if !positionExists(t, conn, positionID) {
			t.Fatal("position deleted by a single repeating reporter")
		}
	})

	t.Run("fourth distinct reporter deletes and purges", func(t *testing.T) {
		positionID, reporter := setupReportFixture(t, conn, "four")

		for i := 0; i < 3; i++ {
			_, _ = moderation.Report("testres-four", positionID, reporter(i), 4, false)
		}
		decision, err := moderation.Report("testres-four", positionID, reporter(3), 4, false)
		if err != nil {
			t.Fatalf("quorum report failed: %v", err)
		}
		if decision != store.DecisionDeleted {
			t.Fatalf("expected deleted, got %s", decision)
		}
		if positionExists(t, conn, positionID) {
			t.Fatal("position survived quorum")
		}

		var reports int64
		_ = conn.Raw(`SELECT COUNT(*) FROM removal_reports WHERE position_id = ?`, positionID).Scan(&reports).Error
		if reports != 0 {
			t.Fatalf("expected purged reports, found %d", reports)
		}
	})

	t.Run("admin override deletes at a single report", func(t *testing.T) {
		positionID, reporter := setupReportFixture(t, conn, "admin")

		decision, err := moderation.Report("testres-admin", positionID, reporter(0), 4, true)
		if err != nil {
			t.Fatalf("admin report failed: %v", err)
		}
		if decision != store.DecisionDeleted {
			t.Fatalf("expected deleted, got %s", decision)
		}
	})

	t.Run("re-deleting an already gone contribution answers deleted", func(t *testing.T) {
		positionID, reporter := setupReportFixture(t, conn, "gone")

		if _, err := moderation.Report("testres-gone", positionID, reporter(0), 4, true); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		decision, err := moderation.Report("testres-gone", positionID, reporter(1), 4, false)
		if err != nil {
			t.Fatalf("re-delete failed: %v", err)
		}
		if decision != store.DecisionDeleted {
			t.Fatalf("expected deleted, got %s", decision)
		}
	})

	t.Run("position of another resource is unknown", func(t *testing.T) {
		positionID, reporter := setupReportFixture(t, conn, "cross")

		_, err := moderation.Report("testres-admin", positionID, reporter(0), 4, false)
		if err != store.ErrUnknownContribution {
			t.Fatalf("expected ErrUnknownContribution, got %v", err)
		}
	})

	t.Run("concurrent quorum crossing deletes exactly once", func(t *testing.T) {
		positionID, reporter := setupReportFixture(t, conn, "race")

		for i := 0; i < 3; i++ {
			_, _ = moderation.Report("testres-race", positionID, reporter(i), 4, false)
		}

		var wg sync.WaitGroup
		decisions := make([]store.Decision, 2)
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				decisions[i], errs[i] = moderation.Report("testres-race", positionID, reporter(3+i), 4, false)
			}(i)
		}
		wg.Wait()

		for i := 0; i < 2; i++ {
			if errs[i] != nil {
				t.Fatalf("concurrent report %d failed: %v", i, errs[i])
			}
			if decisions[i] != store.DecisionDeleted {
				t.Fatalf("concurrent report %d: expected deleted, got %s", i, decisions[i])
			}
		}
		if positionExists(t, conn, positionID) {
			t.Fatal("position survived concurrent quorum")
		}
	})
}
