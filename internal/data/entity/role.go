package entity

type Role struct {
	BaseSimple
	RoleName string `db:"role_name"`
}
