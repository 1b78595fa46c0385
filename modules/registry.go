package modules

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
	"gopkg.in/yaml.v3"
)

// ErrModuleNotFound is returned by Import when no file on the search path provides a module.
var ErrModuleNotFound = errors.New("module not found")

// Module is a named set of attributes loaded from a data file.
type Module struct {
	Name  string
	Path  string
	attrs ldvalue.Value
}

// Attr returns the named top-level attribute, or a null value if there is none.
func (m *Module) Attr(name string) ldvalue.Value {
	return m.attrs.GetByKey(name)
}

// Attrs returns all of the module's attributes as an object.
func (m *Module) Attrs() ldvalue.Value {
	return m.attrs
}

type decoder struct {
	ext    string
	decode func([]byte) (interface{}, error)
}

// Extensions are tried in this order within each search path directory.
var decoders = []decoder{
	{".yaml", decodeYAML},
	{".yml", decodeYAML},
	{".toml", decodeTOML},
	{".json", decodeJSON},
}

func decodeYAML(data []byte) (interface{}, error) {
	var v interface{}
	err := yaml.Unmarshal(data, &v)
	return v, err
}

func decodeTOML(data []byte) (interface{}, error) {
	var v map[string]interface{}
	err := toml.Unmarshal(data, &v)
	return v, err
}

func decodeJSON(data []byte) (interface{}, error) {
	var v interface{}
	err := json.Unmarshal(data, &v)
	return v, err
}

// Registry is a table of loaded modules plus the search path used to find new ones. Once a
// module has been imported, later imports of the same name return the same Module until it is
// unloaded, even if its file has changed.
type Registry struct {
	modules    map[string]*Module
	searchPath []string
	lock       sync.Mutex
}

// Default is the process-wide registry.
var Default = NewRegistry()

func NewRegistry(searchPath ...string) *Registry {
	return &Registry{
		modules:    make(map[string]*Module),
		searchPath: append([]string(nil), searchPath...),
	}
}

// Import returns the module called name, loading it from the search path if it is not already
// in the table. A dotted name such as "pkg.sub" is looked up as pkg/sub.<ext>.
func (r *Registry) Import(name string) (*Module, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if m, ok := r.modules[name]; ok {
		return m, nil
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid module name %q", name)
	}
	rel := filepath.Join(strings.Split(name, ".")...)
	for _, dir := range r.searchPath {
		for _, d := range decoders {
			path := filepath.Join(dir, rel+d.ext)
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("reading module %q: %w", name, err)
			}
			attrs, err := parseAttrs(data, d)
			if err != nil {
				return nil, fmt.Errorf("parsing module %q from %s: %w", name, path, err)
			}
			m := &Module{Name: name, Path: path, attrs: attrs}
			r.modules[name] = m
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (search path: [%s])", ErrModuleNotFound, name, strings.Join(r.searchPath, ", "))
}

func parseAttrs(data []byte, d decoder) (ldvalue.Value, error) {
	raw, err := d.decode(data)
	if err != nil {
		return ldvalue.Null(), err
	}
	if raw == nil {
		return ldvalue.Parse([]byte("{}")), nil
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return ldvalue.Null(), err
	}
	attrs := ldvalue.Parse(jsonData)
	if attrs.Type() != ldvalue.ObjectType {
		return ldvalue.Null(), errors.New("top level of a module must be a mapping")
	}
	return attrs, nil
}

// Register adds a module that did not come from a file, replacing any module of the same name.
func (r *Registry) Register(name string, attrs ldvalue.Value) *Module {
	m := &Module{Name: name, attrs: attrs}
	r.lock.Lock()
	r.modules[name] = m
	r.lock.Unlock()
	return m
}

// Lookup returns a module only if it is already loaded.
func (r *Registry) Lookup(name string) (*Module, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	m, ok := r.modules[name]
	return m, ok
}

// Unload removes a module from the table. It reports whether the module was loaded.
func (r *Registry) Unload(name string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	_, ok := r.modules[name]
	delete(r.modules, name)
	return ok
}

// Loaded returns the names of all loaded modules, sorted.
func (r *Registry) Loaded() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
