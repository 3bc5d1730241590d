package user

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

var AllRoles = []Role{
	RoleStudent,
	RoleAdmin,
}

func (r Role) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}
