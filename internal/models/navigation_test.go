package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pages(items []NavItem) []Page {
	out := make([]Page, 0, len(items))
	for _, it := range items {
		out = append(out, it.Page)
	}
	return out
}

func TestPagesFor(t *testing.T) {
	assert.Equal(t,
		[]Page{PagePatients, PageAppointments, PageProcedures, PageUsers, PageClinic, PageBilling, PageReports},
		pages(PagesFor(RoleAdmin)))
	assert.Equal(t,
		[]Page{PagePatients, PageAppointments, PageProcedures, PageClinic, PageBilling, PageReports},
		pages(PagesFor(RoleDentist)))
	assert.Equal(t,
		[]Page{PagePatients, PageAppointments, PageProcedures},
		pages(PagesFor(RoleReceptionist)))
	assert.Empty(t, PagesFor("Intern"))
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		role Role
		page Page
		want bool
	}{
		{RoleAdmin, PageUsers, true},
		{RoleDentist, PageUsers, false},
		{RoleReceptionist, PageUsers, false},
		{RoleDentist, PageConsultation, true},
		{RoleReceptionist, PageConsultation, false},
		{RoleReceptionist, PageOdontogram, true},
		{RoleReceptionist, PageBilling, false},
		{RoleDentist, PageReports, true},
		{RoleReceptionist, PageLogin, true},
		{"", PagePatients, false},
		{RoleAdmin, Page("unknown"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanAccess(tt.role, tt.page), "%s -> %s", tt.role, tt.page)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleDentist.Valid())
	assert.True(t, RoleReceptionist.Valid())
	assert.False(t, Role("admin").Valid())
}
