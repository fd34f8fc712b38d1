package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleAdmin, CategoryCreate, true},
		{RoleAdmin, CategoryUpdate, true},
		{RoleEditor, CategoryCreate, false},
		{RoleEditor, TopicModerate, true},
		{RoleEditor, ReplyMarkSolution, true},
		{RoleViewer, TopicCreate, true},
		{RoleViewer, ReplyCreate, true},
		{RoleViewer, TopicModerate, false},
		{RoleViewer, ReplyMarkSolution, false},
		{Role("guest"), TopicCreate, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.role, tt.action))
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleEditor, ParseRole("editor"))
	assert.Equal(t, RoleViewer, ParseRole(""))
	assert.Equal(t, RoleViewer, ParseRole("root"))
}
