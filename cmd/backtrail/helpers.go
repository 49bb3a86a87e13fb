// Shared helpers for backtrail CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ledgerline/backtrail/internal/memory"
	"github.com/ledgerline/backtrail/internal/sqlite"
	"github.com/ledgerline/backtrail/pkg/navstack"
	"github.com/ledgerline/backtrail/pkg/types"
)

// attachStore resolves the data directory, selects the backend from config,
// and attaches it. The caller must defer store.Detach().
func attachStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	cfg := types.Config{
		Backend: backend,
		DataDir: dataDir,
		Session: resolveSession(),
	}

	var store types.Store
	switch backend {
	case types.BackendMemory:
		store = memory.NewStore()
	default:
		// Attach rejects unknown backend names via Config.Validate.
		store = sqlite.NewStore()
	}

	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// openStack attaches the store and returns the hydrated stack for the
// selected session. The caller must defer store.Detach().
func openStack() (types.Store, *navstack.Stack, error) {
	store, err := attachStore()
	if err != nil {
		return nil, nil, err
	}

	stack := navstack.New(store, resolveSession())
	stack.Hydrate()
	return store, stack, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseKeyValues builds a map from repeated key=value arguments.
func parseKeyValues(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	m := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		m[k] = v
	}
	return m, nil
}

// entryResult is the JSON shape for commands that report a stack entry.
type entryResult struct {
	Path    string `json:"path,omitempty"`
	Size    int    `json:"size"`
	Session string `json:"session"`
}
