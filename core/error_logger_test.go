package core

import (
	"coinwidget/prefs"
	"errors"
	"testing"
)

func TestErrorLogger_EvictsOldest(t *testing.T) {
	l := NewErrorLogger(2)
	l.RecordStoreError(1, "save", errors.New("first"))
	l.RecordStoreError(2, "save", errors.New("second"))
	l.RecordStoreError(3, "decode", errors.New("third"))

	logs := l.Recent()
	if len(logs) != 2 {
		t.Fatalf("len = %d, want 2", len(logs))
	}
	if logs[0].WidgetID != 3 || logs[1].WidgetID != 2 {
		t.Fatalf("unexpected order: %d, %d", logs[0].WidgetID, logs[1].WidgetID)
	}
	if logs[0].Level != "WARN" || logs[1].Level != "ERROR" {
		t.Fatalf("levels = %s, %s", logs[0].Level, logs[1].Level)
	}
	if logs[0].ID != 3 {
		t.Fatalf("ID = %d, want 3", logs[0].ID)
	}

	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("Len = %d after Clear", l.Len())
	}
}

func TestErrorLogger_ReceivesStoreFailures(t *testing.T) {
	l := NewErrorLogger(10)
	backend := prefs.NewMemoryBackend()
	store := prefs.NewStore(backend, prefs.WithErrorHandler(l.RecordStoreError))

	_ = backend.Save("5", "[broken")
	if got := store.Widget(5).Interval(); got != prefs.DefaultInterval {
		t.Fatalf("Interval() = %d", got)
	}

	logs := l.Recent()
	if len(logs) != 1 || logs[0].Op != "decode" || logs[0].WidgetID != 5 || logs[0].Source != "prefs" {
		t.Fatalf("unexpected logs: %+v", logs)
	}
}
