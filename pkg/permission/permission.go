package permission

type Role string

type Action string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

const (
	CategoryCreate    Action = "category.create"
	CategoryUpdate    Action = "category.update"
	TopicCreate       Action = "topic.create"
	TopicModerate     Action = "topic.moderate"
	ReplyCreate       Action = "reply.create"
	ReplyMarkSolution Action = "reply.mark_solution"
)

// 角色能力表，新增角色只需要加一行
var table = map[Role]map[Action]bool{
	RoleAdmin: {
		CategoryCreate:    true,
		CategoryUpdate:    true,
		TopicCreate:       true,
		TopicModerate:     true,
		ReplyCreate:       true,
		ReplyMarkSolution: true,
	},
	RoleEditor: {
		TopicCreate:       true,
		TopicModerate:     true,
		ReplyCreate:       true,
		ReplyMarkSolution: true,
	},
	RoleViewer: {
		TopicCreate: true,
		ReplyCreate: true,
	},
}

// Can 未知角色没有任何权限
func Can(role Role, action Action) bool {
	return table[role][action]
}

func ParseRole(s string) Role {
	switch r := Role(s); r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return r
	}
	return RoleViewer
}
