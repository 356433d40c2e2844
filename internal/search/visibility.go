package search

import "github.com/harborview/lens/internal/model"

// VisibleTo filters saved searches down to those the principal may see.
// A search is visible when the principal is its creator, the principal is an
// admin, the search is public, or the search is team-visible and the
// principal holds any role above viewer.
func VisibleTo(searches []*model.SavedSearch, principalID string, role model.Role) []*model.SavedSearch {
	visible := make([]*model.SavedSearch, 0, len(searches))
	for _, s := range searches {
		if isVisible(s, principalID, role) {
			visible = append(visible, s)
		}
	}
	return visible
}

func isVisible(s *model.SavedSearch, principalID string, role model.Role) bool {
	if s.CreatedBy == principalID || role == model.RoleAdmin {
		return true
	}
	switch s.Visibility {
	case model.VisibilityPublic:
		return true
	case model.VisibilityTeam:
		return role != model.RoleViewer
	case model.VisibilityShared:
		// Share lists are not implemented; shared currently behaves
		// exactly like private.
		return false
	default:
		return false
	}
}
