package nav

// Role is one of the four fixed user categories. It determines the available
// navigation menu and the default view.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

var AllRoles = []Role{RoleAdmin, RoleTeacher, RoleStudent, RoleParent}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

// View is a named, renderable screen. It is always one of the page IDs of the
// owning role's menu.
type View string

// MenuItem is one entry of a role's ordered navigation menu.
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// menus is the single source of truth for role navigation; both Resolve and
// the navigation endpoints read from it. The first entry of each menu is the
// role's default view.
var menus = map[Role][]MenuItem{
	RoleAdmin: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "students", Label: "Students"},
		{ID: "teachers", Label: "Teachers"},
		{ID: "attendance", Label: "Attendance"},
		{ID: "fees", Label: "Fee Management"},
		{ID: "exams", Label: "Exams & Results"},
		{ID: "timetable", Label: "Timetable"},
		{ID: "transport", Label: "Transport"},
		{ID: "library", Label: "Library"},
		{ID: "reports", Label: "Reports"},
		{ID: "announcements", Label: "Announcements"},
		{ID: "settings", Label: "Settings"},
	},
	RoleTeacher: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "my-classes", Label: "My Classes"},
		{ID: "attendance", Label: "Attendance"},
		{ID: "marks-entry", Label: "Marks Entry"},
		{ID: "timetable", Label: "My Timetable"},
		{ID: "homework", Label: "Homework"},
		{ID: "announcements", Label: "Announcements"},
	},
	RoleStudent: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "my-profile", Label: "My Profile"},
		{ID: "attendance", Label: "My Attendance"},
		{ID: "results", Label: "My Results"},
		{ID: "timetable", Label: "Timetable"},
		{ID: "homework", Label: "Homework"},
		{ID: "library", Label: "Library"},
		{ID: "announcements", Label: "Announcements"},
	},
	RoleParent: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "children", Label: "My Children"},
		{ID: "attendance", Label: "Attendance"},
		{ID: "fees", Label: "Fee Payment"},
		{ID: "results", Label: "Results"},
		{ID: "timetable", Label: "Timetable"},
		{ID: "transport", Label: "Transport"},
		{ID: "announcements", Label: "Announcements"},
	},
}

// Menu returns the ordered navigation menu for the given role.
// An unknown role gets the admin menu, mirroring the router's fallthrough.
func Menu(role Role) []MenuItem {
	if menu, ok := menus[role]; ok {
		return menu
	}
	return menus[RoleAdmin]
}

// DefaultView returns the role's home view (the first entry of its menu).
func DefaultView(role Role) View {
	return View(Menu(role)[0].ID)
}

// Resolve maps (role, pageID) to the view to render. It is total: a pageID
// not present in the role's menu (including one valid for another role, or
// the empty string on first load) resolves to the role's default view.
func Resolve(role Role, pageID string) View {
	for _, item := range Menu(role) {
		if item.ID == pageID {
			return View(item.ID)
		}
	}
	return DefaultView(role)
}
