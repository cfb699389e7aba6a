package model

// 关联表，主键为联合主键

type UserRole struct {
	UserId int64 `gorm:"column:user_id;primaryKey" json:"userId"`
	RoleId int64 `gorm:"column:role_id;primaryKey" json:"roleId"`
}

func (UserRole) TableName() string {
	return "sys_user_role"
}

type UserPost struct {
	UserId int64 `gorm:"column:user_id;primaryKey" json:"userId"`
	PostId int64 `gorm:"column:post_id;primaryKey" json:"postId"`
}

func (UserPost) TableName() string {
	return "sys_user_post"
}

type RoleMenu struct {
	RoleId int64 `gorm:"column:role_id;primaryKey" json:"roleId"`
	MenuId int64 `gorm:"column:menu_id;primaryKey" json:"menuId"`
}

func (RoleMenu) TableName() string {
	return "sys_role_menu"
}

type RoleDept struct {
	RoleId int64 `gorm:"column:role_id;primaryKey" json:"roleId"`
	DeptId int64 `gorm:"column:dept_id;primaryKey" json:"deptId"`
}

func (RoleDept) TableName() string {
	return "sys_role_dept"
}
