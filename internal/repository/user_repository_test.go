package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/policy"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
)

func TestUserRepositoryList(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewUserRepository(db)
	admin := &model.User{ID: 1, Role: model.RoleAdmin}

	_, _, err := repo.List(context.Background(), policy.UsersFor(admin),
		query.UserFilters{Search: "ann"},
		query.Pagination{Page: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, captured.sql, 2)

	countSQL, dataSQL := captured.sql[0], captured.sql[1]
	countVars, dataVars := captured.vars[0], captured.vars[1]

	t.Run("count and data share the predicate", func(t *testing.T) {
		assert.Equal(t, whereClause(t, countSQL), whereClause(t, dataSQL))
		assert.Equal(t, []interface{}{"%ann%", "%ann%"}, countVars)

		expected := append(append([]interface{}{}, countVars...), 5, 5)
		assert.Equal(t, expected, dataVars)
	})

	t.Run("ordered by id ascending", func(t *testing.T) {
		assert.Contains(t, dataSQL, "ORDER BY users.id ASC")
	})

	t.Run("password hash never selected", func(t *testing.T) {
		assert.Contains(t, dataSQL, "SELECT id, name, email, role, created_at")
		assert.NotContains(t, dataSQL, "password")
	})
}

func TestUserRepositoryListScoped(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewUserRepository(db)
	caller := &model.User{ID: 9, Role: model.RoleUser}

	_, _, err := repo.List(context.Background(), policy.UsersFor(caller),
		query.UserFilters{}, query.Pagination{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, captured.sql, 2)

	for i := range captured.sql {
		assert.Contains(t, captured.sql[i], "users.id = ?")
		assert.Equal(t, uint(9), captured.vars[i][0])
	}
}
