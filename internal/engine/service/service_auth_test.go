package service

import (
	"testing"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/stretchr/testify/assert"
)

func normalUser() *model.User {
	return &model.User{UserId: 2, DeptId: 100, Username: "atlas", Status: model.StatusNormal}
}

func TestAuthorizeSuperuserBypass(t *testing.T) {
	roles := []model.Role{
		{RoleId: 1, RoleKey: "admin", Status: model.StatusNormal},
	}
	d := Authorize(normalUser(), roles, nil, "system:user:remove")
	assert.True(t, d.Allowed)

	roles = []model.Role{
		{RoleId: 5, RoleKey: "ops", IsAdmin: true, Status: model.StatusNormal},
	}
	d = Authorize(normalUser(), roles, nil, "anything:at:all")
	assert.True(t, d.Allowed)
}

func TestAuthorizeDisabledAccountBeatsSuperuser(t *testing.T) {
	user := normalUser()
	user.Status = model.StatusDisabled
	roles := []model.Role{
		{RoleId: 1, RoleKey: "admin", Status: model.StatusNormal},
	}
	d := Authorize(user, roles, nil, "system:user:list")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonAccountDisabled, d.Reason)
}

func TestAuthorizeDisabledSuperRoleIsIgnored(t *testing.T) {
	// 超级角色被停用后不再触发放行
	roles := []model.Role{
		{RoleId: 1, RoleKey: "admin", Status: model.StatusDisabled},
	}
	d := Authorize(normalUser(), roles, nil, "system:user:list")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonInsufficientPermission, d.Reason)
}

func TestAuthorizePermMatch(t *testing.T) {
	roles := []model.Role{
		{RoleId: 3, RoleKey: "editor", Status: model.StatusNormal},
	}
	perms := []string{"system:user:list", "system:user:query"}

	d := Authorize(normalUser(), roles, perms, "system:user:list")
	assert.True(t, d.Allowed)

	d = Authorize(normalUser(), roles, perms, "system:user:remove")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonInsufficientPermission, d.Reason)
}

func TestAuthorizeEmptyRequiredPerm(t *testing.T) {
	roles := []model.Role{
		{RoleId: 3, RoleKey: "viewer", Status: model.StatusNormal},
	}
	d := Authorize(normalUser(), roles, nil, "")
	assert.True(t, d.Allowed)
}

func TestAuthorizeRole(t *testing.T) {
	roles := []model.Role{
		{RoleId: 3, RoleKey: "editor", Status: model.StatusNormal},
		{RoleId: 4, RoleKey: "auditor", Status: model.StatusDisabled},
	}

	d := AuthorizeRole(normalUser(), roles, "editor")
	assert.True(t, d.Allowed)

	// 停用角色不参与匹配
	d = AuthorizeRole(normalUser(), roles, "auditor")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonInsufficientRole, d.Reason)

	user := normalUser()
	user.Status = model.StatusDisabled
	d = AuthorizeRole(user, roles, "editor")
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonAccountDisabled, d.Reason)
}

func TestMatchPerm(t *testing.T) {
	assert.True(t, MatchPerm([]string{"*:*:*"}, "system:user:remove"))
	assert.True(t, MatchPerm([]string{"system:user:*"}, "system:user:remove"))
	assert.True(t, MatchPerm([]string{"system:*:list"}, "system:role:list"))
	assert.False(t, MatchPerm([]string{"system:user:*"}, "system:role:list"))
	assert.False(t, MatchPerm([]string{"system:user"}, "system:user:list"))
	assert.False(t, MatchPerm(nil, "system:user:list"))
}

type fakeUserRepo struct {
	repo.IUserRepository
	user  *model.User
	roles []model.Role
}

func (f *fakeUserRepo) GetUserById(int64) (*model.User, error)       { return f.user, nil }
func (f *fakeUserRepo) GetRolesByUserId(int64) ([]model.Role, error) { return f.roles, nil }

type fakeDeptRepo struct {
	repo.IDeptRepository
	custom map[int64][]int64
	below  map[int64][]int64
}

func (f *fakeDeptRepo) ListDeptIdsByRoleIds(roleIds []int64) ([]int64, error) {
	var ids []int64
	for _, roleId := range roleIds {
		ids = append(ids, f.custom[roleId]...)
	}
	return ids, nil
}

func (f *fakeDeptRepo) ListDeptIdsByAncestor(deptId int64) ([]int64, error) {
	return f.below[deptId], nil
}

func TestVisibleDeptIdsAllScope(t *testing.T) {
	user := normalUser()
	depts := &fakeDeptRepo{below: map[int64][]int64{100: {100, 101}}}
	as := NewAuthService(&fakeUserRepo{
		user:  user,
		roles: []model.Role{{RoleId: 3, RoleKey: "ops", Status: model.StatusNormal, DataScope: model.DataScopeAll}},
	}, nil, depts)

	// nil 表示不过滤，新增部门天然可见
	ids, err := as.VisibleDeptIds(user.UserId)
	assert.NoError(t, err)
	assert.Nil(t, ids)
}

func TestVisibleDeptIdsUnion(t *testing.T) {
	user := normalUser()
	depts := &fakeDeptRepo{
		custom: map[int64][]int64{3: {200, 201}},
		below:  map[int64][]int64{100: {100, 101, 102}},
	}
	as := NewAuthService(&fakeUserRepo{
		user: user,
		roles: []model.Role{
			{RoleId: 3, RoleKey: "ops", Status: model.StatusNormal, DataScope: model.DataScopeCustom},
			{RoleId: 4, RoleKey: "lead", Status: model.StatusNormal, DataScope: model.DataScopeDeptAndBelow},
			{RoleId: 5, RoleKey: "off", Status: model.StatusDisabled, DataScope: model.DataScopeAll},
		},
	}, nil, depts)

	ids, err := as.VisibleDeptIds(user.UserId)
	assert.NoError(t, err)
	assert.Equal(t, []int64{200, 201, 100, 101, 102}, ids)
}

func TestVisibleDeptIdsOwnDeptOnly(t *testing.T) {
	user := normalUser()
	as := NewAuthService(&fakeUserRepo{
		user:  user,
		roles: []model.Role{{RoleId: 6, RoleKey: "member", Status: model.StatusNormal, DataScope: model.DataScopeDept}},
	}, nil, &fakeDeptRepo{})

	ids, err := as.VisibleDeptIds(user.UserId)
	assert.NoError(t, err)
	assert.Equal(t, []int64{100}, ids)
}

func TestRoleKeysForUserReturnsHeldKeys(t *testing.T) {
	as := NewAuthService(&fakeUserRepo{
		user: normalUser(),
		roles: []model.Role{
			{RoleId: 5, RoleKey: "ops", IsAdmin: true, Status: model.StatusNormal},
			{RoleId: 6, RoleKey: "auditor", Status: model.StatusDisabled},
		},
	}, nil, nil)

	// 超级管理员标记不覆盖角色自身的标识，停用角色不返回
	keys, err := as.RoleKeysForUser(2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ops"}, keys)
}

func TestRoleKeysForUserLegacyAdminFallback(t *testing.T) {
	as := NewAuthService(&fakeUserRepo{
		user:  normalUser(),
		roles: []model.Role{{RoleId: 1, Status: model.StatusNormal}},
	}, nil, nil)

	keys, err := as.RoleKeysForUser(2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"admin"}, keys)
}
