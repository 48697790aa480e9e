package models

// Page is a section of the clinic application.
type Page string

const (
	PageLogin        Page = "login"
	PagePatients     Page = "patients"
	PageOdontogram   Page = "odontogram"
	PageProcedures   Page = "procedures"
	PageAppointments Page = "appointments"
	PageUsers        Page = "users"
	PageClinic       Page = "clinic"
	PageConsultation Page = "consultation"
	PageBilling      Page = "billing"
	PageReports      Page = "reports"
)

// NavItem is an entry of the navigation bar.
type NavItem struct {
	Page  Page   `json:"page"`
	Label string `json:"label"`
}

// navigation is the full menu in display order with the roles allowed to see
// each entry. A nil role list means every authenticated user.
var navigation = []struct {
	item  NavItem
	roles []Role
}{
	{NavItem{PagePatients, "Pacientes"}, nil},
	{NavItem{PageAppointments, "Agendamentos"}, nil},
	{NavItem{PageProcedures, "Procedimentos"}, nil},
	{NavItem{PageUsers, "Usuários"}, []Role{RoleAdmin}},
	{NavItem{PageClinic, "Consultório"}, []Role{RoleDentist, RoleAdmin}},
	{NavItem{PageBilling, "Faturamento"}, []Role{RoleDentist, RoleAdmin}},
	{NavItem{PageReports, "Relatórios"}, []Role{RoleDentist, RoleAdmin}},
}

// pageParents lists pages reached from another page rather than the menu.
var pageParents = map[Page]Page{
	PageOdontogram:   PagePatients,
	PageConsultation: PageClinic,
}

// PagesFor returns the navigation visible to role.
func PagesFor(role Role) []NavItem {
	var out []NavItem
	for _, n := range navigation {
		if allowed(n.roles, role) {
			out = append(out, n.item)
		}
	}
	return out
}

// CanAccess reports whether role may open page.
func CanAccess(role Role, page Page) bool {
	if !role.Valid() {
		return false
	}
	if page == PageLogin {
		return true
	}
	if parent, ok := pageParents[page]; ok {
		page = parent
	}
	for _, n := range navigation {
		if n.item.Page == page {
			return allowed(n.roles, role)
		}
	}
	return false
}

func allowed(roles []Role, role Role) bool {
	if !role.Valid() {
		return false
	}
	if roles == nil {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
