package blacklist

import (
	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// KnownBadList is the curated community-sourced list of bad actors. It is
// read-only for the analysis core; the entries come from an external feed
// (Dune exports in the original data set) loaded by the caller.
type KnownBadList struct {
	byAddress map[model.Address]model.KnownBadEntry
	order     []model.Address
}

// NewKnownBadList normalizes and indexes curated entries. Duplicate
// addresses keep the first label seen.
func NewKnownBadList(entries []model.KnownBadEntry) *KnownBadList {
	l := &KnownBadList{byAddress: make(map[model.Address]model.KnownBadEntry, len(entries))}
	for _, e := range entries {
		addr := model.NormalizeAddress(e.Address.String())
		if _, ok := l.byAddress[addr]; ok {
			continue
		}
		e.Address = addr
		l.byAddress[addr] = e
		l.order = append(l.order, addr)
	}
	return l
}

// Contains reports curated membership, case-insensitively.
func (l *KnownBadList) Contains(address model.Address) bool {
	_, ok := l.byAddress[model.NormalizeAddress(address.String())]
	return ok
}

// Label returns the curated display label for an address, empty when the
// address is not listed.
func (l *KnownBadList) Label(address model.Address) string {
	return l.byAddress[model.NormalizeAddress(address.String())].Label
}

// Entries returns the curated entries in load order.
func (l *KnownBadList) Entries() []model.KnownBadEntry {
	out := make([]model.KnownBadEntry, 0, len(l.order))
	for _, addr := range l.order {
		out = append(out, l.byAddress[addr])
	}
	return out
}
