package modules

// SearchPath returns a copy of the directories Import searches, in order.
func (r *Registry) SearchPath() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.searchPath...)
}

func (r *Registry) SetSearchPath(dirs []string) {
	r.lock.Lock()
	r.searchPath = append([]string(nil), dirs...)
	r.lock.Unlock()
}

// PrependSearchPath makes dir the first directory searched.
func (r *Registry) PrependSearchPath(dir string) {
	r.lock.Lock()
	r.searchPath = append([]string{dir}, r.searchPath...)
	r.lock.Unlock()
}

// SaveSearchPath records the current search path and returns a function that puts it back.
func (r *Registry) SaveSearchPath() (restore func()) {
	saved := r.SearchPath()
	return func() { r.SetSearchPath(saved) }
}

// WithSavedSearchPath runs action and then restores the search path, however action exits.
func (r *Registry) WithSavedSearchPath(action func()) {
	defer r.SaveSearchPath()()
	action()
}
