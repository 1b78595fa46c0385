package modules

import "sort"

// Snapshot remembers which modules were loaded at one point in time.
type Snapshot struct {
	registry *Registry
	names    map[string]struct{}
}

// Snapshot captures the names of the currently loaded modules.
func (r *Registry) Snapshot() *Snapshot {
	r.lock.Lock()
	defer r.lock.Unlock()
	names := make(map[string]struct{}, len(r.modules))
	for name := range r.modules {
		names[name] = struct{}{}
	}
	return &Snapshot{registry: r, names: names}
}

func (s *Snapshot) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Reset unloads every module that was loaded after the snapshot was taken, so that importing
// the same name again reads its file again. It returns the removed names, sorted. Calling it
// again with no imports in between removes nothing.
func (s *Snapshot) Reset() []string {
	r := s.registry
	r.lock.Lock()
	defer r.lock.Unlock()
	var removed []string
	for name := range r.modules {
		if _, ok := s.names[name]; !ok {
			delete(r.modules, name)
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	return removed
}
