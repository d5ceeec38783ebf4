package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh004/DevShare/pkg/types"
)

func TestResourceStoreListQueryPagination(t *testing.T) {
	store := NewResourceStore(nil)

	tests := []struct {
		name       string
		page       uint64
		pageSize   uint64
		wantClause string
	}{
		{name: "page 1", page: 1, pageSize: 10, wantClause: "LIMIT 10 OFFSET 0"},
		{name: "page 2", page: 2, pageSize: 10, wantClause: "LIMIT 10 OFFSET 10"},
		{name: "page 3", page: 3, pageSize: 10, wantClause: "LIMIT 10 OFFSET 20"},
		{name: "page 5 limit 20", page: 5, pageSize: 20, wantClause: "LIMIT 20 OFFSET 80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSql, _, err := store.listQuery(types.ListResourceOptions{}, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Contains(t, gotSql, tt.wantClause)
		})
	}
}

func TestResourceStoreListQueryNoPagination(t *testing.T) {
	store := NewResourceStore(nil)

	gotSql, _, err := store.listQuery(types.ListResourceOptions{}, types.NO_PAGINATION, types.NO_PAGINATION)
	require.NoError(t, err)
	assert.NotContains(t, gotSql, "LIMIT")
	assert.NotContains(t, gotSql, "OFFSET")
}

func TestResourceStoreListQueryShape(t *testing.T) {
	store := NewResourceStore(nil)

	gotSql, gotArgs, err := store.listQuery(types.ListResourceOptions{
		Search: "go",
		Type:   types.RESOURCE_TYPE_VIDEO,
		Sort:   types.SORT_OLDEST,
	}, 2, 10)
	require.NoError(t, err)

	// filters, sort and paging all land in one statement, $-placeholders
	assert.Contains(t, gotSql, "FROM devshare_resource")
	assert.Contains(t, gotSql, "is_deleted = $1")
	assert.Contains(t, gotSql, "type = $2")
	assert.Contains(t, gotSql, "ILIKE")
	assert.Contains(t, gotSql, "ORDER BY created_at ASC")
	assert.Contains(t, gotSql, "LIMIT 10 OFFSET 10")
	assert.Equal(t, []interface{}{false, types.RESOURCE_TYPE_VIDEO, "%go%", "%go%", "%go%"}, gotArgs)
}
