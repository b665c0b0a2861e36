package cache

import (
	"testing"
	"time"

	"github.com/Kamalbura/AQI/pkg/aqi"
)

func TestGetEmpty(t *testing.T) {
	c := New(time.Minute)
	if snap, fresh := c.Get(); snap != nil || fresh {
		t.Errorf("empty cache: expected nil/false, got %v/%v", snap, fresh)
	}
	if _, ok := c.Latest(); ok {
		t.Error("empty cache: Latest should report no reading")
	}
}

func TestFreshnessExpiry(t *testing.T) {
	c := New(time.Minute)
	readings := []aqi.ProcessedReading{
		{Reading: aqi.Reading{Timestamp: "2024-05-01T10:00:00Z"}},
	}

	c.Set(readings, time.Now())
	if snap, fresh := c.Get(); snap == nil || !fresh {
		t.Error("just-set snapshot should be fresh")
	}

	// Backdate the fetch beyond the TTL: the snapshot survives, marked
	// stale.
	c.Set(readings, time.Now().Add(-2*time.Minute))
	snap, fresh := c.Get()
	if snap == nil {
		t.Fatal("stale snapshot should still be returned")
	}
	if fresh {
		t.Error("backdated snapshot should be stale")
	}
	if len(snap.Readings) != 1 {
		t.Errorf("expected 1 reading, got %d", len(snap.Readings))
	}
}

func TestLatestReturnsNewest(t *testing.T) {
	c := New(time.Minute)
	c.Set([]aqi.ProcessedReading{
		{Reading: aqi.Reading{Timestamp: "2024-05-01T10:00:00Z"}},
		{Reading: aqi.Reading{Timestamp: "2024-05-01T10:01:00Z"}},
	}, time.Now())

	latest, ok := c.Latest()
	if !ok {
		t.Fatal("expected a latest reading")
	}
	if latest.Timestamp != "2024-05-01T10:01:00Z" {
		t.Errorf("expected newest reading, got %q", latest.Timestamp)
	}
}

func TestDefaultTTL(t *testing.T) {
	if c := New(0); c.TTL() != DefaultTTL {
		t.Errorf("expected default TTL %v, got %v", DefaultTTL, c.TTL())
	}
}
