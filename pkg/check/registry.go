package check

import (
	"fmt"
	"sort"
	"sync"
)

// HookDef describes a registered hook for documentation and tooling.
type HookDef struct {
	Name        string // stable identifier, e.g. "column-desc-are-same"
	Description string // one-line summary shown by the hooks command
	Rationale   string // why the hook exists, what problems it prevents
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]HookDef)
)

// Register adds a hook definition to the registry.
// Panics on duplicate names; registration happens in init functions,
// so a duplicate is a programming error.
func Register(def HookDef) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[def.Name]; exists {
		panic(fmt.Sprintf("check: duplicate hook registration: %s", def.Name))
	}
	registry[def.Name] = def
}

// Get returns a hook definition by name.
func Get(name string) (HookDef, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	def, ok := registry[name]
	return def, ok
}

// GetAll returns all registered hooks sorted by name.
func GetAll() []HookDef {
	registryMu.RLock()
	defer registryMu.RUnlock()
	defs := make([]HookDef, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}
