package service

import (
	"encoding/json"
	"testing"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLabelTree(t *testing.T) {
	nodes := []model.TreeNode{
		{Id: 1, Label: "系统管理", ParentId: 0},
		{Id: 2, Label: "用户管理", ParentId: 1},
		{Id: 3, Label: "角色管理", ParentId: 1},
		{Id: 4, Label: "监控", ParentId: 0},
	}

	tree := BuildLabelTree(nodes)
	require.Len(t, tree, 2)
	assert.Equal(t, int64(1), tree[0].Id)
	assert.Equal(t, int64(4), tree[1].Id)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "用户管理", tree[0].Children[0].Label)
	assert.Nil(t, tree[1].Children)

	// 无子节点时 children 字段不序列化
	raw, err := json.Marshal(tree[1])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "children")
}

func TestBuildLabelTreeSelfReference(t *testing.T) {
	nodes := []model.TreeNode{
		{Id: 1, Label: "root", ParentId: 0},
		{Id: 5, Label: "loop", ParentId: 5},
	}
	tree := BuildLabelTree(nodes)
	require.Len(t, tree, 1)
	assert.Equal(t, int64(1), tree[0].Id)
}

func TestBuildLabelTreeCycle(t *testing.T) {
	nodes := []model.TreeNode{
		{Id: 1, Label: "a", ParentId: 0},
		{Id: 2, Label: "b", ParentId: 3},
		{Id: 3, Label: "c", ParentId: 2},
	}
	// 环上的节点无法挂到根，但不得死循环
	tree := BuildLabelTree(nodes)
	require.Len(t, tree, 1)
}

func TestBuildRouteTreeDirLink(t *testing.T) {
	// is_frame 为 0 的目录平铺为外链路由
	menus := []model.Menu{
		{MenuId: 1, MenuName: "官网", Path: "https://example.com", MenuType: model.MenuTypeDir,
			IsFrame: 0, Visible: model.MenuVisible, Icon: "link"},
	}

	routers := BuildRouteTree(menus, menus)
	require.Len(t, routers, 1)
	r := routers[0]
	assert.Equal(t, "官网", r.Name)
	assert.Equal(t, "https://example.com", r.Path)
	assert.Nil(t, r.Component)
	require.NotNil(t, r.Meta)
	assert.True(t, r.Meta.NoCache)
	require.NotNil(t, r.Meta.Link)
	assert.Equal(t, "https://example.com", *r.Meta.Link)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"component":null`)
}

func TestBuildRouteTreeDirContainer(t *testing.T) {
	menus := []model.Menu{
		{MenuId: 1, MenuName: "系统管理", ComponentName: "System", Path: "system",
			MenuType: model.MenuTypeDir, IsFrame: 1, Visible: model.MenuVisible, Breadcrumb: true},
		{MenuId: 2, ParentId: 1, MenuName: "用户管理", ComponentName: "User", Path: "user",
			Component: "system/user/index", MenuType: model.MenuTypeMenu, IsFrame: 1,
			Visible: model.MenuVisible, NoCache: true},
	}

	routers := BuildRouteTree(menus[:1], menus)
	require.Len(t, routers, 1)
	r := routers[0]
	assert.Equal(t, "System", r.Name)
	assert.Equal(t, "/system", r.Path)
	assert.Equal(t, "noRedirect", r.Redirect)
	require.NotNil(t, r.Component)
	assert.Equal(t, "Layout", *r.Component)
	assert.True(t, r.AlwaysShow)
	require.NotNil(t, r.Meta)
	assert.False(t, r.Meta.NoCache)
	assert.Nil(t, r.Meta.Link)

	require.Len(t, r.Children, 1)
	child := r.Children[0]
	assert.Equal(t, "User", child.Name)
	assert.Equal(t, "user", child.Path)
	require.NotNil(t, child.Component)
	assert.Equal(t, "system/user/index", *child.Component)
	assert.True(t, child.Meta.NoCache)
}

func TestBuildRouteTreeNestedDir(t *testing.T) {
	menus := []model.Menu{
		{MenuId: 1, MenuName: "工具", ComponentName: "Tool", Path: "tool",
			MenuType: model.MenuTypeDir, IsFrame: 1, Visible: model.MenuVisible},
		{MenuId: 2, ParentId: 1, MenuName: "构建", ComponentName: "Build", Path: "build",
			MenuType: model.MenuTypeDir, IsFrame: 1, Visible: model.MenuVisible},
	}

	routers := BuildRouteTree(menus[:1], menus)
	require.Len(t, routers, 1)
	require.Len(t, routers[0].Children, 1)
	nested := routers[0].Children[0]
	require.NotNil(t, nested.Component)
	assert.Equal(t, "ParentView", *nested.Component)
	assert.Equal(t, "build", nested.Path)
}

func TestBuildRouteTreeTopLevelMenu(t *testing.T) {
	// 顶层菜单包一层隐式 Layout
	menus := []model.Menu{
		{MenuId: 1, MenuName: "首页", ComponentName: "Index", Path: "index",
			Component: "index", MenuType: model.MenuTypeMenu, IsFrame: 1, Visible: model.MenuVisible},
	}

	routers := BuildRouteTree(menus, menus)
	require.Len(t, routers, 1)
	r := routers[0]
	assert.Equal(t, "/", r.Path)
	require.NotNil(t, r.Component)
	assert.Equal(t, "Layout", *r.Component)
	assert.Nil(t, r.Meta)
	require.Len(t, r.Children, 1)
	assert.Equal(t, "Index", r.Children[0].Name)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"meta":null`)
}

func TestBuildRouteTreeDropsButtonsAndLinks(t *testing.T) {
	menus := []model.Menu{
		{MenuId: 1, MenuName: "查询按钮", MenuType: model.MenuTypeButton, Visible: model.MenuVisible},
		{MenuId: 2, MenuName: "外部链接", MenuType: model.MenuTypeLink, Visible: model.MenuVisible},
	}
	routers := BuildRouteTree(menus, menus)
	assert.Empty(t, routers)
}

func TestBuildRouteTreeHidden(t *testing.T) {
	menus := []model.Menu{
		{MenuId: 1, ParentId: 5, MenuName: "隐藏页", ComponentName: "HiddenPage", Path: "hidden",
			Component: "hidden/index", MenuType: model.MenuTypeMenu, IsFrame: 1, Visible: model.MenuHidden},
	}
	routers := BuildRouteTree(menus, menus)
	require.Len(t, routers, 1)
	assert.True(t, routers[0].Hidden)
}

type fakeMenuRepo struct {
	repo.IMenuRepository
	menus []model.Menu
}

func (f *fakeMenuRepo) ListAllMenus() ([]model.Menu, error) {
	return f.menus, nil
}

func (f *fakeMenuRepo) ListMenusByRoleIds([]int64) ([]model.Menu, error) {
	return f.menus, nil
}

func TestRoutersForUserHidesInvisibleMenus(t *testing.T) {
	menus := []model.Menu{
		{MenuId: 1, ParentId: 0, MenuName: "用户管理", Path: "user", Component: "system/user/index",
			MenuType: model.MenuTypeMenu, Visible: model.MenuHidden, Status: model.StatusNormal, IsFrame: 1},
	}
	menuRepo := &fakeMenuRepo{menus: menus}

	// 普通角色绑定了隐藏菜单，路由树中不应出现
	ms := NewMenuService(menuRepo, &fakeUserRepo{
		roles: []model.Role{{RoleId: 3, RoleKey: "ops", Status: model.StatusNormal}},
	}, nil)
	routers, err := ms.RoutersForUser(2)
	require.NoError(t, err)
	assert.Empty(t, routers)

	// 超级管理员仍能看到隐藏菜单
	ms = NewMenuService(menuRepo, &fakeUserRepo{
		roles: []model.Role{{RoleId: 1, RoleKey: "admin", Status: model.StatusNormal}},
	}, nil)
	routers, err = ms.RoutersForUser(1)
	require.NoError(t, err)
	assert.Len(t, routers, 1)
}
