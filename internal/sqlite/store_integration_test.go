package sqlite

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/backtrail/pkg/navstack"
	"github.com/ledgerline/backtrail/pkg/types"
)

// Navigation state written through a stack in one process lifetime must
// hydrate identically in the next.
func TestNavigationStateSurvivesRestart(t *testing.T) {
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir(), Session: "user-7"}

	store := NewStore()
	require.NoError(t, store.Attach(cfg))

	stack := navstack.New(store, cfg.Session)
	stack.Hydrate()
	stack.Push("/business-inventory")
	stack.Push("/item/42")
	stack.Push("/project/p1")
	stack.Pop()

	require.NoError(t, store.Detach())

	restarted := NewStore()
	require.NoError(t, restarted.Attach(cfg))
	t.Cleanup(func() { _ = restarted.Detach() })

	restored := navstack.New(restarted, cfg.Session)
	restored.Hydrate()

	if diff := cmp.Diff([]string{"/business-inventory", "/item/42"}, restored.Entries()); diff != "" {
		t.Errorf("restored entries mismatch (-want +got):\n%s", diff)
	}

	top := restored.Peek("")
	require.NotNil(t, top)
	require.Equal(t, "/item/42", top.Path)
}

// Bumping the stack key version must orphan old data rather than feed it to
// a hydrating stack.
func TestVersionedKeyIsolatesFormats(t *testing.T) {
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir(), Session: "user-7"}

	store := NewStore()
	require.NoError(t, store.Attach(cfg))
	t.Cleanup(func() { _ = store.Detach() })

	require.NoError(t, store.Set(cfg.Session, "navigation-stack:v0", []byte(`["/old"]`)))

	stack := navstack.New(store, cfg.Session)
	stack.Hydrate()

	require.Equal(t, 0, stack.Size(), "data under another key version must not hydrate")
}
