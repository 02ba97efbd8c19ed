package app

import (
	"errors"
	"testing"
	"time"

	"github.com/mwaldt/clinespend/internal/models"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if s.GetReport() != nil {
		t.Error("report should be nil before first scan")
	}
	if s.GetScanError() != nil {
		t.Error("scan error should be nil initially")
	}
	if s.IsScanning() {
		t.Error("scanning should be false initially")
	}
}

func TestState_SetReport(t *testing.T) {
	s := NewState()
	s.SetScanning(true)
	s.scanError = errors.New("stale")

	report := models.NewReport("/tmp/tasks")
	s.SetReport(report)

	if s.GetReport() != report {
		t.Error("GetReport should return the stored report")
	}
	if s.GetScanError() != nil {
		t.Error("SetReport should clear the scan error")
	}
	if s.IsScanning() {
		t.Error("SetReport should clear the scanning flag")
	}
	if s.GetTip() == "" {
		t.Error("SetReport should pick a usage tip")
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be set")
	}
}

func TestState_SetScanError(t *testing.T) {
	s := NewState()
	s.SetScanning(true)

	err := errors.New("tasks directory missing")
	s.SetScanError(err)

	if s.GetScanError() != err {
		t.Errorf("GetScanError = %v, want %v", s.GetScanError(), err)
	}
	if s.IsScanning() {
		t.Error("SetScanError should clear the scanning flag")
	}
}

func TestState_Budget(t *testing.T) {
	s := NewState()
	if s.GetBudget() != 0 {
		t.Error("budget should default to zero")
	}
	s.SetBudget(25.5)
	if s.GetBudget() != 25.5 {
		t.Errorf("GetBudget = %v, want 25.5", s.GetBudget())
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "test" {
		t.Errorf("Notification message = %s, want test", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("Notification should be removed")
	}
}

func TestState_ClearExpiredNotifications(t *testing.T) {
	s := NewState()

	// Expired
	s.notifications = append(s.notifications, Notification{
		ID:        "expired",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	})

	// Active
	s.notifications = append(s.notifications, Notification{
		ID:        "active",
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	})

	s.ClearExpiredNotifications()

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != "active" {
		t.Errorf("Expected active notification, got %s", notifs[0].ID)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("scanning...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != LoadingNotificationID {
		t.Errorf("Expected ID %s, got %s", LoadingNotificationID, notifs[0].ID)
	}

	// Update message
	s.SetLoadingNotification("still scanning...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 {
		t.Error("Expected 1 notification after update")
	}
	if notifs[0].Message != "still scanning..." {
		t.Errorf("Expected updated message, got %s", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("Loading notification should be cleared")
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewState()
	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "note", time.Minute)
	}
	if got := len(s.GetNotifications()); got != 10 {
		t.Errorf("notifications capped at 10, got %d", got)
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		t    NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationLoading, "loading"},
		{NotificationType(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRandomTip(t *testing.T) {
	for i := 0; i < 20; i++ {
		if randomTip() == "" {
			t.Fatal("randomTip returned empty string")
		}
	}
}
