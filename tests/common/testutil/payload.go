//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Mutation edits a request payload before it is sent.
type Mutation func(m map[string]any)

// Payload renders v through its JSON tags into a map and applies muts in order,
// so tests can send bodies the typed request DTO cannot express.
func Payload(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}

// SeatIDStrings returns n distinct random show seat ids in their wire form.
func SeatIDStrings(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.NewString()
	}
	return ids
}
