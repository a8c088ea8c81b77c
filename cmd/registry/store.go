package main

import (
	"sort"
	"sync"
	"time"

	"book-management/pkg/registry"
)

const (
	StatusUp    = "UP"
	StatusStale = "STALE"
)

// ServiceStatus is one registered instance as reported by the registry.
type ServiceStatus struct {
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	LastSeen time.Time `json:"lastSeen"`
	Status   string    `json:"status"`
}

type entry struct {
	address  string
	lastSeen time.Time
}

// Store tracks the last heartbeat per service name. An instance that misses
// heartbeats past staleAfter is reported STALE but never evicted; a catalog
// this small has no need for eviction.
type Store struct {
	mu         sync.RWMutex
	services   map[string]entry
	staleAfter time.Duration
	now        func() time.Time
}

func NewStore(staleAfter time.Duration) *Store {
	return &Store{
		services:   map[string]entry{},
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// Record registers or refreshes a service instance.
func (s *Store) Record(hb registry.Heartbeat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[hb.Name] = entry{address: hb.Address, lastSeen: s.now()}
}

// Snapshot lists all known services sorted by name.
func (s *Store) Snapshot() []ServiceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := make([]ServiceStatus, 0, len(s.services))
	for name, e := range s.services {
		status := StatusUp
		if now.Sub(e.lastSeen) > s.staleAfter {
			status = StatusStale
		}
		out = append(out, ServiceStatus{
			Name:     name,
			Address:  e.address,
			LastSeen: e.lastSeen,
			Status:   status,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
