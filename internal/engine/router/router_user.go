// Copyright 2025 Atlas Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) userRouter(r fiber.Router, auth fiber.Handler) {
	userGroup := r.Group("/system/user", auth)
	{
		userGroup.Get("/", rt.requirePerm("system:user:list"), rt.listUsers)
		userGroup.Post("/", rt.requirePerm("system:user:add"), rt.audit("用户管理", model.BusinessTypeCreate), rt.createUser)
		userGroup.Put("/", rt.requirePerm("system:user:edit"), rt.audit("用户管理", model.BusinessTypeUpdate), rt.updateUser)
		userGroup.Get("/option", rt.userOption)
		userGroup.Put("/change_status", rt.requirePerm("system:user:edit"), rt.audit("用户管理", model.BusinessTypeUpdate), rt.changeUserStatus)
		userGroup.Put("/reset_pwd", rt.requirePerm("system:user:resetPwd"), rt.audit("用户管理", model.BusinessTypeUpdate), rt.resetUserPwd)
		userGroup.Get("/profile", rt.profile)
		userGroup.Put("/profile", rt.updateProfile)
		userGroup.Put("/profile/update_pwd", rt.updatePwd)
		userGroup.Get("/auth_role/:userId", rt.requirePerm("system:user:query"), rt.authRole)
		userGroup.Put("/auth_role/:userId", rt.requirePerm("system:user:edit"), rt.audit("用户管理", model.BusinessTypeGrant), rt.addAuthRole)
		userGroup.Get("/:ids", rt.requirePerm("system:user:query"), rt.getUser)
		userGroup.Delete("/:ids", rt.requirePerm("system:user:remove"), rt.audit("用户管理", model.BusinessTypeDelete), rt.deleteUsers)
	}
}

func (rt *Router) listUsers(c *fiber.Ctx) error {
	claims := currentClaims(c)
	query := &model.UserQuery{
		PageNum:     queryInt(c, "pageNum"),
		PageSize:    queryInt(c, "pageSize"),
		Username:    c.Query("userName"),
		PhoneNumber: c.Query("phonenumber"),
		Status:      c.Query("status"),
		DeptId:      int64(queryInt(c, "deptId")),
	}

	// 数据权限过滤
	deptIds, err := rt.Services.Auth.VisibleDeptIds(claims.UserId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}

	users, total, err := rt.Repos.User.ListUsers(query, deptIds)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, users, total)
}

func (rt *Router) getUser(c *fiber.Ctx) error {
	userId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid user id")
	}
	user, err := rt.Repos.User.GetUserById(userId)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "user not found")
	}
	roleIds, err := rt.Repos.User.GetRoleIdsByUserId(userId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	postIds, err := rt.Repos.User.GetPostIdsByUserId(userId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepMap(c, fiber.Map{
		"data":    user,
		"roleIds": roleIds,
		"postIds": postIds,
	})
}

// userOption 用户表单的角色与岗位选项
func (rt *Router) userOption(c *fiber.Ctx) error {
	roles, err := rt.Repos.Role.ListAllRoles()
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	posts, err := rt.Repos.Post.ListAllPosts()
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepMap(c, fiber.Map{
		"roles": roles,
		"posts": posts,
	})
}

func (rt *Router) createUser(c *fiber.Ctx) error {
	var req model.CreateUserReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.User.CreateUser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updateUser(c *fiber.Ctx) error {
	var req model.UpdateUserReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.User.UpdateUser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deleteUsers(c *fiber.Ctx) error {
	userIds, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid user ids")
	}
	claims := currentClaims(c)
	if err := rt.Services.User.DeleteUsers(claims.UserId, userIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) changeUserStatus(c *fiber.Ctx) error {
	var req model.ChangeStatusReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.User.ChangeStatus(req.UserId, req.Status); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) resetUserPwd(c *fiber.Ctx) error {
	var req model.ResetPwdReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.User.ResetPwd(req.UserId, req.Password); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

// profile 个人中心
func (rt *Router) profile(c *fiber.Ctx) error {
	claims := currentClaims(c)
	user, roleKeys, _, err := rt.Services.User.GetInfo(claims.UserId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	postIds, err := rt.Repos.User.GetPostIdsByUserId(claims.UserId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepMap(c, fiber.Map{
		"data":    user,
		"roles":   roleKeys,
		"postIds": postIds,
	})
}

func (rt *Router) updateProfile(c *fiber.Ctx) error {
	var req model.UpdateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	claims := currentClaims(c)
	if err := rt.Services.User.UpdateProfile(claims.UserId, &req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updatePwd(c *fiber.Ctx) error {
	var req model.UpdatePwdReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	claims := currentClaims(c)
	if err := rt.Services.User.UpdatePwd(claims.UserId, &req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

// authRole 用户已分配角色与全量角色
func (rt *Router) authRole(c *fiber.Ctx) error {
	userId, err := pathId(c, "userId")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid user id")
	}
	userRoles, err := rt.Repos.User.GetRolesByUserId(userId)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	roles, err := rt.Repos.Role.ListAllRoles()
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepMap(c, fiber.Map{
		"userRoles": userRoles,
		"roles":     roles,
	})
}

func (rt *Router) addAuthRole(c *fiber.Ctx) error {
	userId, err := pathId(c, "userId")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid user id")
	}
	var req struct {
		RoleIds []int64 `json:"roleIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.User.AllocateRoles(userId, req.RoleIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}
