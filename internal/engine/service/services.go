package service

import (
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/go-atlas/atlas/pkg/cache"
)

// Services 统一管理所有 service
type Services struct {
	Auth  *AuthService
	User  *UserService
	Role  *RoleService
	Menu  *MenuService
	Dept  *DeptService
	Post  *PostService
	Dict  *DictService
	Audit *AuditService
}

// NewServices 初始化所有 service
func NewServices(repos *repo.Repositories, cache cache.ICache) *Services {
	authService := NewAuthService(repos.User, repos.Role, repos.Dept)

	return &Services{
		Auth:  authService,
		User:  NewUserService(repos.User, repos.LoginLog, cache, authService),
		Role:  NewRoleService(repos.Role, repos.User),
		Menu:  NewMenuService(repos.Menu, repos.User, repos.Role),
		Dept:  NewDeptService(repos.Dept, repos.Role, authService),
		Post:  NewPostService(repos.Post),
		Dict:  NewDictService(repos.Dict),
		Audit: NewAuditService(repos.OperLog),
	}
}
