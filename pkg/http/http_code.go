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

// 前端约定的业务响应码：成功 200，业务失败 500，认证阶段 401 及 1000x 细分码。
// 这些数值是对前端可观察的契约，不可改动。
var (
	Success = response(200, "ok")

	Failed        = response(500, "请求失败")
	NotFound      = response(500, "记录不存在")
	InternalError = response(500, "服务器内部错误，请联系管理员")

	PermissionDenied = response(500, "没有操作权限")
	AccountDisabled  = response(500, "账户已停用")

	Unauthorized = response(401, "认证失败")

	CaptchaIncorrect    = response(10001, "验证码错误")
	CredentialsRequired = response(10002, "需同时提供用户名和密码")
	BadCredentials      = response(10003, "用户名或密码错误")
	AccountStopped      = response(10004, "账号已停用")
)

func response(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}
