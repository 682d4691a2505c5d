package nav

import (
	"github.com/pranay7979/BrainyCheck/internal/platform/auth"
)

// Entry is one navigation item in display order.
type Entry struct {
	Label    string `json:"label"`
	Path     string `json:"path"`
	IsActive bool   `json:"is_active"`
}

type item struct {
	label     string
	path      string
	authOnly  bool
	guestOnly bool
}

// The menu in display order. Diseases Info shows in every session state.
var menu = []item{
	{label: "Predict", path: "/predict", authOnly: true},
	{label: "Previous Scans", path: "/previous-scans", authOnly: true},
	{label: "Login", path: "/login", guestOnly: true},
	{label: "Signup", path: "/signup", guestOnly: true},
	{label: "Diseases Info", path: "/diseases"},
	{label: "Service", path: "/services", guestOnly: true},
	{label: "Logout", path: "/logout", authOnly: true},
}

// Entries computes the navigation menu for a session. It is a pure function
// of its inputs: the same state always yields the same ordered entries. The
// menu is currently identical for every authenticated role, but the role is
// part of the presentation state and travels with the call.
func Entries(authenticated bool, _ auth.Role, currentPath string) []Entry {
	entries := make([]Entry, 0, len(menu))
	for _, it := range menu {
		if it.authOnly && !authenticated {
			continue
		}
		if it.guestOnly && authenticated {
			continue
		}
		entries = append(entries, Entry{
			Label:    it.label,
			Path:     it.path,
			IsActive: it.path == currentPath,
		})
	}
	return entries
}
