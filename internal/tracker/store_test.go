package tracker

import (
	"testing"
	"time"

	"shipwatch/internal/ais"
)

func TestStorePutAndLatest(t *testing.T) {
	store := NewStore(StoreConfig{MaxVessels: 10, TTL: time.Minute})
	now := time.Now()

	m := &ais.PositionReport{Type: 1, UserID: 111}
	store.Put(now, m)

	got, ok := store.Latest(111, ais.Key(1))
	if !ok {
		t.Fatalf("expected message")
	}
	if got != ais.Message(m) {
		t.Fatalf("Latest returned a different message")
	}

	// A newer message of the same kind replaces the old one.
	m2 := &ais.PositionReport{Type: 1, UserID: 111, Timestmp: 5}
	store.Put(now.Add(time.Second), m2)
	got, _ = store.Latest(111, ais.Key(1))
	if got != ais.Message(m2) {
		t.Fatalf("Latest did not return the replacement")
	}
}

func TestStoreLatestAllIsACopy(t *testing.T) {
	store := NewStore(StoreConfig{})
	now := time.Now()
	store.Put(now, &ais.PositionReport{Type: 1, UserID: 111})

	all := store.LatestAll(111)
	delete(all, ais.Key(1))

	if _, ok := store.Latest(111, ais.Key(1)); !ok {
		t.Fatalf("mutating the copy reached the store")
	}
}

func TestStoreEvictsOldestVessel(t *testing.T) {
	store := NewStore(StoreConfig{MaxVessels: 2, TTL: time.Hour})
	base := time.Now()

	store.Put(base, &ais.PositionReport{Type: 1, UserID: 1})
	store.Put(base.Add(time.Second), &ais.PositionReport{Type: 1, UserID: 2})
	store.Put(base.Add(2*time.Second), &ais.PositionReport{Type: 1, UserID: 3})

	if _, ok := store.Latest(1, ais.Key(1)); ok {
		t.Fatalf("oldest vessel should have been evicted")
	}
	if _, ok := store.Latest(3, ais.Key(1)); !ok {
		t.Fatalf("newest vessel missing")
	}
}

func TestStorePurgesStaleOnMMSIs(t *testing.T) {
	store := NewStore(StoreConfig{MaxVessels: 10, TTL: time.Minute})
	base := time.Now()

	store.Put(base, &ais.PositionReport{Type: 1, UserID: 1})
	store.Put(base.Add(50*time.Second), &ais.PositionReport{Type: 1, UserID: 2})

	mmsis := store.MMSIs(base.Add(70 * time.Second))
	if len(mmsis) != 1 || mmsis[0] != 2 {
		t.Fatalf("MMSIs=%v want [2]", mmsis)
	}
}
