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

package service

import (
	"encoding/json"
	"time"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/go-atlas/atlas/pkg/log"
)

// AuditEntry 单次操作的审计内容
type AuditEntry struct {
	Title         string
	BusinessType  string
	Method        string
	RequestMethod string
	RequestUrl    string
	RequestParam  string
	JsonResult    string
	ErrorMsg      string
	Ip            string
	Location      string
	Operator      string
	Succeeded     bool
}

type AuditService struct {
	operLogRepo repo.IOperLogRepository
}

func NewAuditService(operLogRepo repo.IOperLogRepository) *AuditService {
	return &AuditService{
		operLogRepo: operLogRepo,
	}
}

// Record 异步落盘审计记录，失败仅记日志，不影响业务操作
func (as *AuditService) Record(entry AuditEntry) {
	operLog := buildOperLog(entry, time.Now())
	go func() {
		if err := as.operLogRepo.CreateOperLog(operLog); err != nil {
			log.Errorw("failed to persist operation log", "title", entry.Title, "error", err)
		}
	}()
}

func buildOperLog(entry AuditEntry, now time.Time) *model.OperLog {
	status := model.OperStatusSuccess
	if !entry.Succeeded {
		status = model.OperStatusFailure
	}
	return &model.OperLog{
		Title:         entry.Title,
		Method:        entry.Method,
		BusinessType:  entry.BusinessType,
		RequestMethod: entry.RequestMethod,
		RequestUrl:    entry.RequestUrl,
		RequestParam:  entry.RequestParam,
		JsonResult:    entry.JsonResult,
		ErrorMsg:      entry.ErrorMsg,
		Ip:            entry.Ip,
		Location:      entry.Location,
		Operator:      entry.Operator,
		Status:        status,
		OperTime:      &now,
	}
}

// BestEffortJSON 响应体为合法 JSON 时原样返回，否则退化为 {}
func BestEffortJSON(body []byte) string {
	if json.Valid(body) && len(body) > 0 {
		return string(body)
	}
	return "{}"
}

// MergeParams 合并查询参数与请求体为一段 JSON，体非 JSON 时以原文记录
func MergeParams(query map[string]string, body []byte) string {
	merged := make(map[string]any, len(query)+1)
	for k, v := range query {
		merged[k] = v
	}
	if len(body) > 0 {
		var bodyMap map[string]any
		if err := json.Unmarshal(body, &bodyMap); err == nil {
			for k, v := range bodyMap {
				merged[k] = v
			}
		} else {
			merged["body"] = string(body)
		}
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
