package rbac

import "go-payroll/internal/domain"

const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

const (
	ResourceDepartment = "department"
	ResourceEmployee   = "employee"
	ResourceSalary     = "salary"
	ResourceAttendance = "attendance"
	ResourceDashboard  = "dashboard"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionExport = "export"
)

// DefaultPolicies: staff may read the directory and dashboards,
// admin manages everything including salaries.
func DefaultPolicies() [][]string {
	return [][]string{
		{domain.RoleStaff, ResourceDepartment, ActionRead},
		{domain.RoleStaff, ResourceEmployee, ActionRead},
		{domain.RoleStaff, ResourceAttendance, ActionRead},
		{domain.RoleStaff, ResourceDashboard, ActionRead},

		{domain.RoleAdmin, ResourceDepartment, ActionCreate},
		{domain.RoleAdmin, ResourceDepartment, ActionUpdate},
		{domain.RoleAdmin, ResourceDepartment, ActionDelete},
		{domain.RoleAdmin, ResourceEmployee, ActionCreate},
		{domain.RoleAdmin, ResourceEmployee, ActionUpdate},
		{domain.RoleAdmin, ResourceEmployee, ActionDelete},
		{domain.RoleAdmin, ResourceAttendance, ActionCreate},
		{domain.RoleAdmin, ResourceSalary, ActionRead},
		{domain.RoleAdmin, ResourceSalary, ActionCreate},
		{domain.RoleAdmin, ResourceSalary, ActionUpdate},
		{domain.RoleAdmin, ResourceSalary, ActionDelete},
		{domain.RoleAdmin, ResourceSalary, ActionExport},
	}
}

// DefaultGroupings: admin inherits every staff permission.
func DefaultGroupings() [][]string {
	return [][]string{
		{domain.RoleAdmin, domain.RoleStaff},
	}
}
