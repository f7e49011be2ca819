// Package variable holds the session-wide variable store: local variables
// keyed by owning scene, global variables keyed by owning campaign.
package variable

import (
	"sync"

	"github.com/lorewright/lorewright/internal/model"
)

// Patch is a partial update to a variable. Nil pointer fields are left
// untouched; SetValue distinguishes "set the value to nil" from "leave it".
type Patch struct {
	Name        *string
	Type        *model.VariableType
	Value       any
	SetValue    bool
	Description *string
}

// Store maintains two independent two-level mappings, one per scope. It
// keeps every owner touched during the session; eviction happens only on an
// explicit Clear. The store trusts callers: name uniqueness per owner is
// enforced at the API boundary, not here.
type Store struct {
	mu     sync.RWMutex
	local  map[string]map[string]model.Variable // sceneId -> variableId -> variable
	global map[string]map[string]model.Variable // campaignId -> variableId -> variable
}

func NewStore() *Store {
	return &Store{
		local:  make(map[string]map[string]model.Variable),
		global: make(map[string]map[string]model.Variable),
	}
}

// SetLocal bulk-replaces the variables owned by a scene, used on initial
// load.
func (s *Store) SetLocal(sceneID string, vars []model.Variable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local[sceneID] = indexByID(vars)
}

func (s *Store) SetGlobal(campaignID string, vars []model.Variable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.global[campaignID] = indexByID(vars)
}

func (s *Store) AddLocal(sceneID string, v model.Variable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	add(s.local, sceneID, v)
}

func (s *Store) AddGlobal(campaignID string, v model.Variable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	add(s.global, campaignID, v)
}

func (s *Store) UpdateLocal(sceneID, variableID string, p Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return update(s.local, sceneID, variableID, p)
}

func (s *Store) UpdateGlobal(campaignID, variableID string, p Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return update(s.global, campaignID, variableID, p)
}

func (s *Store) DeleteLocal(sceneID, variableID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.local[sceneID], variableID)
}

func (s *Store) DeleteGlobal(campaignID, variableID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.global[campaignID], variableID)
}

func (s *Store) GetLocal(sceneID, variableID string) (model.Variable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.local[sceneID][variableID]
	return v, ok
}

func (s *Store) GetGlobal(campaignID, variableID string) (model.Variable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.global[campaignID][variableID]
	return v, ok
}

// FindLocalByName scans a scene's variables by name.
func (s *Store) FindLocalByName(sceneID, name string) (model.Variable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByName(s.local[sceneID], name)
}

func (s *Store) FindGlobalByName(campaignID, name string) (model.Variable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByName(s.global[campaignID], name)
}

// LocalForScene returns a scene's variables. Order is not guaranteed;
// callers must not depend on it.
func (s *Store) LocalForScene(sceneID string) []model.Variable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return values(s.local[sceneID])
}

func (s *Store) GlobalForCampaign(campaignID string) []model.Variable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return values(s.global[campaignID])
}

// Clear drops every mapping for every owner, the only eviction path.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = make(map[string]map[string]model.Variable)
	s.global = make(map[string]map[string]model.Variable)
}

func indexByID(vars []model.Variable) map[string]model.Variable {
	m := make(map[string]model.Variable, len(vars))
	for _, v := range vars {
		m[v.ID] = v
	}
	return m
}

func add(owners map[string]map[string]model.Variable, ownerID string, v model.Variable) {
	inner, ok := owners[ownerID]
	if !ok {
		inner = make(map[string]model.Variable)
		owners[ownerID] = inner
	}
	inner[v.ID] = v
}

func update(owners map[string]map[string]model.Variable, ownerID, variableID string, p Patch) bool {
	v, ok := owners[ownerID][variableID]
	if !ok {
		return false
	}
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Type != nil {
		v.Type = *p.Type
	}
	if p.SetValue {
		v.Value = p.Value
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	owners[ownerID][variableID] = v
	return true
}

func findByName(inner map[string]model.Variable, name string) (model.Variable, bool) {
	for _, v := range inner {
		if v.Name == name {
			return v, true
		}
	}
	return model.Variable{}, false
}

func values(inner map[string]model.Variable) []model.Variable {
	out := make([]model.Variable, 0, len(inner))
	for _, v := range inner {
		out = append(out, v)
	}
	return out
}
