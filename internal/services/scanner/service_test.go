package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwaldt/clinespend/internal/aggregate"
	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/scan"
)

const opusMetadata = `{"model_usage":[{"model_provider_id":"claude-code","model_id":"claude-opus-4-20250514"}]}`

func writeTask(t *testing.T, base, name string) {
	t.Helper()
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	messages := `[{"type":"say","say":"api_req_started","ts":1700000000000,"text":"{\"tokensIn\":100,\"tokensOut\":50,\"cost\":0.01}"}]`
	if err := os.WriteFile(filepath.Join(dir, scan.MetadataFileName), []byte(opusMetadata), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, scan.MessagesFileName), []byte(messages), 0o644); err != nil {
		t.Fatal(err)
	}
}

func waitForEvent(t *testing.T, ch <-chan Event, want EventType) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event type %d", want)
		}
	}
}

func TestRescan(t *testing.T) {
	base := t.TempDir()
	writeTask(t, base, "task-1")

	svc, err := New(base, 50*time.Millisecond, aggregate.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer svc.Close()

	if svc.Report() != nil {
		t.Error("Report() before first scan should be nil")
	}

	report, err := svc.Rescan()
	if err != nil {
		t.Fatalf("Rescan() error = %v", err)
	}
	if report.Counters.Processed != 1 {
		t.Errorf("processed = %d, want 1", report.Counters.Processed)
	}
	if svc.Report() != report {
		t.Error("Report() should return the last scan result")
	}

	waitForEvent(t, svc.Events(), EventScanStarted)
	finished := waitForEvent(t, svc.Events(), EventScanFinished)
	if finished.Report == nil || finished.Report.TotalRequests != 1 {
		t.Errorf("finished event report = %+v", finished.Report)
	}
}

func TestRescanMissingBasePath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "missing")

	svc, err := New(base, 50*time.Millisecond, aggregate.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer svc.Close()

	report, err := svc.Rescan()
	if err == nil {
		t.Fatal("Rescan() on missing base path should fail")
	}
	if report == nil || report.HasUsage() {
		t.Errorf("failed scan should yield an empty report, got %+v", report)
	}

	ev := waitForEvent(t, svc.Events(), EventError)
	if ev.Error == nil {
		t.Error("error event missing error")
	}
}

func TestWatcherTriggersRescan(t *testing.T) {
	base := t.TempDir()

	svc, err := New(base, 20*time.Millisecond, aggregate.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer svc.Close()

	writeTask(t, base, "task-new")

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev := <-svc.Events():
			if ev.Type == EventScanFinished && ev.Report.Counters.Processed == 1 {
				return
			}
		case <-deadline:
			t.Fatal("watcher did not trigger a rescan")
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	svc, err := New(t.TempDir(), 50*time.Millisecond, aggregate.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestReportAfterRescanHasAllTiers(t *testing.T) {
	svc, err := New(t.TempDir(), 50*time.Millisecond, aggregate.Options{Location: time.UTC})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer svc.Close()

	report, err := svc.Rescan()
	if err != nil {
		t.Fatalf("Rescan() error = %v", err)
	}
	if len(report.Totals) != len(models.AllTiers()) {
		t.Errorf("report totals cover %d tiers, want %d", len(report.Totals), len(models.AllTiers()))
	}
}
