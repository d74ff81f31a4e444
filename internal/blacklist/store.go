// Package blacklist holds the in-run registry of flagged wallets and the
// curated known-bad list.
package blacklist

import (
	"sort"
	"sync"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// Store is the idempotent, evidence-carrying registry of flagged wallets.
// Upserts are serialized by a single mutex; concurrent wallet pipelines
// write through it safely.
type Store struct {
	mu      sync.Mutex
	entries map[model.Address]*model.BlacklistEntry
	order   []model.Address
	now     func() time.Time
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[model.Address]*model.BlacklistEntry),
		now:     time.Now,
	}
}

// Upsert registers or refreshes a flagged wallet. The first flag sets
// FirstFlaggedAt; every call bumps LastUpdatedAt and replaces the evidence.
// Violations are merged as a union and the risk score keeps its maximum, so
// a later upsert with weaker evidence never downgrades an entry.
func (s *Store) Upsert(address model.Address, reason string, evidence model.Evidence, riskScore int, violations []model.ViolationTag) {
	address = model.NormalizeAddress(address.String())
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries[address]
	if !ok {
		s.entries[address] = &model.BlacklistEntry{
			Address:        address,
			Reason:         reason,
			Evidence:       evidence,
			RiskScore:      riskScore,
			Violations:     sortedTags(violations),
			FirstFlaggedAt: now,
			LastUpdatedAt:  now,
		}
		s.order = append(s.order, address)
		return
	}

	existing.Reason = reason
	existing.Evidence = evidence
	if riskScore > existing.RiskScore {
		existing.RiskScore = riskScore
	}
	existing.Violations = mergeTags(existing.Violations, violations)
	existing.LastUpdatedAt = now
}

// Contains reports whether the address is flagged, case-insensitively.
func (s *Store) Contains(address model.Address) bool {
	address = model.NormalizeAddress(address.String())

	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[address]
	return ok
}

// All returns every entry in insertion order. The order is stable within a
// run.
func (s *Store) All() []model.BlacklistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.BlacklistEntry, 0, len(s.order))
	for _, addr := range s.order {
		out = append(out, *s.entries[addr])
	}
	return out
}

// Len returns the number of flagged wallets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func sortedTags(tags []model.ViolationTag) []model.ViolationTag {
	out := append([]model.ViolationTag(nil), tags...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func mergeTags(a, b []model.ViolationTag) []model.ViolationTag {
	seen := make(map[model.ViolationTag]struct{}, len(a)+len(b))
	for _, t := range a {
		seen[t] = struct{}{}
	}
	for _, t := range b {
		seen[t] = struct{}{}
	}
	out := make([]model.ViolationTag, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
