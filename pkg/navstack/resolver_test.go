package navstack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/backtrail/pkg/types"
)

func TestResolverBackDestination(t *testing.T) {
	tests := []struct {
		name        string
		stacked     []string
		loc         types.Location
		defaultPath string
		want        string
	}{
		{
			name:        "stack top wins regardless of default",
			stacked:     []string{"/projects", "/business-inventory"},
			loc:         types.Location{Path: "/item/42"},
			defaultPath: "/fallback",
			want:        "/business-inventory",
		},
		{
			name:        "stack top equal to current full path falls through to default",
			stacked:     []string{"/item/42"},
			loc:         types.Location{Path: "/item/42"},
			defaultPath: "/fallback",
			want:        "/fallback",
		},
		{
			name:        "stack top compared against path plus query",
			stacked:     []string{"/item/42?from=transaction"},
			loc:         types.Location{Path: "/item/42", RawQuery: "from=transaction"},
			defaultPath: "/fallback",
			want:        "/fallback",
		},
		{
			name:        "return-to hint from location state",
			loc:         types.Location{Path: "/item/42", State: map[string]string{"returnTo": "/projects"}},
			defaultPath: "/fallback",
			want:        "/projects",
		},
		{
			name:        "return-to hint from query parameter",
			loc:         types.Location{Path: "/item/42", RawQuery: "returnTo=%2Fprojects"},
			defaultPath: "/fallback",
			want:        "/projects",
		},
		{
			name:        "state hint takes precedence over query hint",
			loc:         types.Location{Path: "/item/42", RawQuery: "returnTo=%2Fquery", State: map[string]string{"returnTo": "/state"}},
			defaultPath: "/fallback",
			want:        "/state",
		},
		{
			name:        "stack top beats return-to hint",
			stacked:     []string{"/stacked"},
			loc:         types.Location{Path: "/item/42", RawQuery: "returnTo=%2Fhinted"},
			defaultPath: "/fallback",
			want:        "/stacked",
		},
		{
			name:        "business inventory source on project page",
			loc:         types.Location{Path: "/project/p1", RawQuery: "from=business-inventory-item"},
			defaultPath: "/fallback",
			want:        "/business-inventory",
		},
		{
			name:        "business inventory source off project page falls through",
			loc:         types.Location{Path: "/settings", RawQuery: "from=business-inventory-item"},
			defaultPath: "/fallback",
			want:        "/fallback",
		},
		{
			name:        "transaction source builds project transaction path",
			loc:         types.Location{Path: "/item/42", RawQuery: "from=transaction&project=p1&transactionId=t9"},
			defaultPath: "/fallback",
			want:        "/project/p1/transaction/t9",
		},
		{
			name:        "transaction source without transactionId falls through",
			loc:         types.Location{Path: "/item/42", RawQuery: "from=transaction&project=p1"},
			defaultPath: "/fallback",
			want:        "/fallback",
		},
		{
			name:        "transaction source without project falls through",
			loc:         types.Location{Path: "/item/42", RawQuery: "from=transaction&transactionId=t9"},
			defaultPath: "/fallback",
			want:        "/fallback",
		},
		{
			name:        "transaction source off item page falls through",
			loc:         types.Location{Path: "/project/p1", RawQuery: "from=transaction&project=p1&transactionId=t9"},
			defaultPath: "/fallback",
			want:        "/fallback",
		},
		{
			name:        "unrecognized source falls through",
			loc:         types.Location{Path: "/item/42", RawQuery: "from=somewhere"},
			defaultPath: "/fallback",
			want:        "/fallback",
		},
		{
			name:        "empty stack and no hints returns default",
			loc:         types.Location{Path: "/item/42"},
			defaultPath: "/fallback",
			want:        "/fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := New(newTestStore(t), testSession)
			for _, path := range tt.stacked {
				stack.Push(path)
			}
			resolver := NewResolver(stack)

			got := resolver.BackDestination(tt.loc, tt.defaultPath)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.stacked), stack.Size(), "resolution must never mutate the stack")
		})
	}
}

func TestResolverNilStackFallsThrough(t *testing.T) {
	resolver := NewResolver(nil)

	got := resolver.BackDestination(types.Location{Path: "/item/42"}, "/fallback")

	assert.Equal(t, "/fallback", got)
}

func TestResolverNilStackStillHonorsHints(t *testing.T) {
	resolver := NewResolver(nil)

	loc := types.Location{Path: "/item/42", RawQuery: "returnTo=%2Fprojects"}
	assert.Equal(t, "/projects", resolver.BackDestination(loc, "/fallback"))
}

func TestResolverNavigationSource(t *testing.T) {
	resolver := NewResolver(nil)

	tests := []struct {
		name string
		loc  types.Location
		want string
	}{
		{
			name: "source present",
			loc:  types.Location{Path: "/item/42", RawQuery: "from=transaction"},
			want: "transaction",
		},
		{
			name: "source absent",
			loc:  types.Location{Path: "/item/42"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.NavigationSource(tt.loc))
		})
	}
}
