// internal/system/utils.go
package system

import (
	"sort"

	"go-yarn-defense/internal/types"
)

// sortedKeys returns the ids of m in ascending order, so systems visit
// entities in a stable order.
func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
