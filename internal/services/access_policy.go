package services

import "github.com/lgalvis/horario/internal/models"

// Operation is a gated action. The Can table below is the single source of
// truth for every permission decision; no other component re-derives
// visibility rules.
type Operation string

const (
	OpViewActivity   Operation = "view_activity"
	OpSubmitActivity Operation = "submit_activity"
	OpManageProjects Operation = "manage_projects"
	OpManageUsers    Operation = "manage_users"
	OpGenerateReport Operation = "generate_report"
)

// Can decides whether an actor with the given role may perform operation on
// target. Target is the person whose records are involved; management
// operations ignore it.
func Can(role string, actor string, operation Operation, target string) bool {
	switch operation {
	case OpViewActivity, OpSubmitActivity:
		if role == models.RoleAdmin {
			return true
		}
		return role == models.RoleMember && actor != "" && actor == target
	case OpManageProjects, OpManageUsers, OpGenerateReport:
		return role == models.RoleAdmin
	default:
		return false
	}
}

// VisiblePersons restricts a person list to those the session may view.
func VisiblePersons(session Session, persons []string) []string {
	if !session.Authenticated {
		return []string{}
	}

	visible := make([]string, 0, len(persons))
	for _, person := range persons {
		if Can(session.Role, session.Username, OpViewActivity, person) {
			visible = append(visible, person)
		}
	}
	return visible
}
