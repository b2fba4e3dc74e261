package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudybookclub/catalog-service/internal/model"
	"github.com/cloudybookclub/catalog-service/internal/repository"
)

func TestRolesFor(t *testing.T) {
	t.Parallel()
	const id = "0a6f3e82-9c1d-4b58-8e7a-5d2c4f9b1a60"

	var tests = []struct {
		name  string
		roles model.ClientRoles
		want  []model.Role
	}{
		{
			name:  "editor only",
			roles: model.ClientRoles{ID: id, Admin: false, Editor: true},
			want:  []model.Role{model.RoleEditor},
		},
		{
			name:  "admin only",
			roles: model.ClientRoles{ID: id, Admin: true, Editor: false},
			want:  []model.Role{model.RoleAdmin},
		},
		{
			// Ordering is a contract: admin always precedes editor.
			name:  "both grants keep admin first",
			roles: model.ClientRoles{ID: id, Admin: true, Editor: true},
			want:  []model.Role{model.RoleAdmin, model.RoleEditor},
		},
		{
			name:  "no grants clears all roles",
			roles: model.ClientRoles{ID: id, Admin: false, Editor: false},
			want:  []model.Role{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, repository.RolesFor(tt.roles))
		})
	}
}
