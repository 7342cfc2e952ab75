package app

import (
	"strings"

	rosterdomain "courtside/internal/modules/roster/domain"
)

// action is a single-key capability a screen may expose. The enabled set is a
// pure function of (screen, role); key handling and the contextual footer both
// derive from it so they can never disagree.
type action int

const (
	actionQuit action = iota
	actionHome
	actionSessions
	actionHelp
	actionNavigate
	actionSelect
	actionCreate
	actionEdit
	actionDelete
	actionManageContent
	actionToggleSubscribe
	actionFilter
	actionMarkComplete
	actionConfirm
	actionFormEdit
)

var actionHints = map[action]string{
	actionQuit:            "[q] Quit",
	actionHome:            "[1] Home",
	actionSessions:        "[2] Sessions",
	actionHelp:            "[?] Help",
	actionNavigate:        "↑↓ Navigate",
	actionSelect:          "[Enter] View",
	actionCreate:          "[c] Create",
	actionEdit:            "[e] Edit",
	actionDelete:          "[d] Delete",
	actionManageContent:   "[t] Add Content",
	actionToggleSubscribe: "[s] Subscribe",
	actionFilter:          "[f] Filter",
	actionMarkComplete:    "[m] Complete",
	actionConfirm:         "[y] Yes  [n] No",
	actionFormEdit:        "[Enter] Save  [Esc] Cancel",
}

func enabledActions(kind screenKind, role rosterdomain.Role) []action {
	coach := role == rosterdomain.RoleCoach

	switch kind {
	case screenHome:
		return []action{actionHome, actionSessions, actionHelp, actionQuit}

	case screenSessionList:
		base := []action{actionNavigate, actionSelect}
		if coach {
			base = append(base, actionCreate, actionEdit, actionDelete)
		} else {
			base = append(base, actionToggleSubscribe, actionFilter, actionMarkComplete)
		}
		return append(base, actionHelp, actionQuit)

	case screenSessionDetail:
		base := []action{}
		if coach {
			base = append(base, actionNavigate, actionManageContent, actionEdit, actionDelete)
		} else {
			base = append(base, actionToggleSubscribe, actionMarkComplete)
		}
		return append(base, actionHelp, actionQuit)

	case screenSessionDelete, screenContentDelete:
		return []action{actionConfirm}

	case screenSessionCreate, screenSessionEdit, screenContentCreate, screenContentEdit:
		return []action{actionFormEdit}

	case screenHelp:
		return []action{actionHome}
	}
	return []action{actionQuit}
}

func allowed(actions []action, a action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func footerHints(actions []action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, actionHints[a])
	}
	return strings.Join(parts, " | ")
}
