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

package middleware

import (
	"github.com/go-atlas/atlas/internal/engine/consts"
	"github.com/go-atlas/atlas/internal/engine/service"
	"github.com/go-atlas/atlas/pkg/http/jwt"
	"github.com/gofiber/fiber/v2"
)

// Audit 操作审计中间件，包在需要留痕的写接口外层。
// 先执行业务处理，再异步落一条操作记录；处理错误原样向上传递。
func Audit(auditSvc *service.AuditService, title, businessType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := make(map[string]string)
		c.Context().QueryArgs().VisitAll(func(k, v []byte) {
			query[string(k)] = string(v)
		})
		// Body 在处理后可能被复用，先复制
		body := make([]byte, len(c.Body()))
		copy(body, c.Body())

		operator := ""
		if claims, ok := c.Locals(consts.CLAIMS).(*jwt.AuthClaims); ok && claims != nil {
			operator = claims.Username
		}

		entry := service.AuditEntry{
			Title:         title,
			BusinessType:  businessType,
			Method:        c.Route().Path,
			RequestMethod: c.Method(),
			RequestUrl:    c.OriginalURL(),
			RequestParam:  service.MergeParams(query, body),
			Ip:            c.IP(),
			Operator:      operator,
		}

		err := c.Next()
		if err != nil {
			entry.Succeeded = false
			entry.ErrorMsg = err.Error()
			entry.JsonResult = "{}"
			auditSvc.Record(entry)
			return err
		}

		entry.Succeeded = true
		entry.JsonResult = service.BestEffortJSON(c.Response().Body())
		auditSvc.Record(entry)
		return nil
	}
}
