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

package http

import (
	"github.com/gofiber/fiber/v2"
)

// Response 统一响应体
type Response struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg"`
	Data  any    `json:"data,omitempty"`
	Rows  any    `json:"rows,omitempty"`
	Total *int64 `json:"total,omitempty"`
}

// WithRepJSON 返回成功结果及数据
func WithRepJSON(c *fiber.Ctx, data any) error {
	return c.JSON(Response{
		Code: Success.Code,
		Msg:  Success.Msg,
		Data: data,
	})
}

// WithRepRows 返回成功的分页结果
func WithRepRows(c *fiber.Ctx, rows any, total int64) error {
	return c.JSON(Response{
		Code:  Success.Code,
		Msg:   Success.Msg,
		Rows:  rows,
		Total: &total,
	})
}

// WithRepMsg 返回自定义 code, msg
func WithRepMsg(c *fiber.Ctx, code int, msg string) error {
	return c.JSON(Response{
		Code: code,
		Msg:  msg,
	})
}

// WithRepNotData 只返回成功的操作结果，无数据字段
func WithRepNotData(c *fiber.Ctx) error {
	return c.JSON(Response{
		Code: Success.Code,
		Msg:  Success.Msg,
	})
}

// WithRepMap 返回成功结果及自定义顶层字段（如 menus + checked_keys）
func WithRepMap(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{
		"code": Success.Code,
		"msg":  Success.Msg,
	}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(body)
}
