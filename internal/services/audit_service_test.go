package services

import (
	"encoding/json"
	"testing"

	"coinfolio/internal/models"
	"coinfolio/internal/testutil"
)

func TestAuditService_Log(t *testing.T) {
	t.Run("records_entry_with_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		user := testutil.CreateTestUser(t, db)
		svc.Log(user.ID, AuditActionBuy, "holding", "h-1", "10.0.0.1", map[string]interface{}{
			"coin_id": "bitcoin",
			"amount":  "500",
		})

		var entries []models.AuditLog
		db.Where("user_id = ?", user.ID).Find(&entries)
		if len(entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(entries))
		}
		entry := entries[0]
		if entry.Action != AuditActionBuy || entry.ResourceType != "holding" || entry.ResourceID != "h-1" {
			t.Errorf("unexpected entry %+v", entry)
		}

		var changes map[string]string
		if err := json.Unmarshal([]byte(entry.Changes), &changes); err != nil {
			t.Fatalf("changes should be JSON: %v", err)
		}
		if changes["coin_id"] != "bitcoin" {
			t.Errorf("expected coin_id bitcoin in changes, got %v", changes)
		}
	})

	t.Run("nil_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAuditService(db)

		svc.Log("u-1", AuditActionReset, "portfolio", "p-1", "", nil)

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected entry: %v", err)
		}
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %q", entry.Changes)
		}
	})

	t.Run("database_failure_does_not_panic", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)
		testutil.TeardownTestDB(t, db)

		svc.Log("u-1", AuditActionSell, "holding", "h-1", "", nil)
	})
}
