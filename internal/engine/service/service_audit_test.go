package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOperLog(t *testing.T) {
	now := time.Now()
	entry := AuditEntry{
		Title:         "用户管理",
		BusinessType:  model.BusinessTypeCreate,
		Method:        "CreateUser",
		RequestMethod: "POST",
		RequestUrl:    "/system/user",
		RequestParam:  `{"username":"atlas"}`,
		JsonResult:    `{"code":200}`,
		Ip:            "127.0.0.1",
		Operator:      "admin",
		Succeeded:     true,
	}

	operLog := buildOperLog(entry, now)
	assert.Equal(t, model.OperStatusSuccess, operLog.Status)
	assert.Empty(t, operLog.ErrorMsg)
	require.NotNil(t, operLog.OperTime)
	assert.Equal(t, now, *operLog.OperTime)
}

func TestBuildOperLogFailure(t *testing.T) {
	entry := AuditEntry{
		Title:        "角色管理",
		BusinessType: model.BusinessTypeDelete,
		ErrorMsg:     "role has user bindings",
		Succeeded:    false,
	}
	operLog := buildOperLog(entry, time.Now())
	assert.Equal(t, model.OperStatusFailure, operLog.Status)
	assert.Equal(t, "role has user bindings", operLog.ErrorMsg)
}

func TestBestEffortJSON(t *testing.T) {
	assert.Equal(t, `{"code":200}`, BestEffortJSON([]byte(`{"code":200}`)))
	assert.Equal(t, "{}", BestEffortJSON([]byte("<html>oops</html>")))
	assert.Equal(t, "{}", BestEffortJSON(nil))
}

func TestMergeParams(t *testing.T) {
	out := MergeParams(map[string]string{"pageNum": "1"}, []byte(`{"username":"atlas"}`))

	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	assert.Equal(t, "1", merged["pageNum"])
	assert.Equal(t, "atlas", merged["username"])
}

func TestMergeParamsNonJSONBody(t *testing.T) {
	out := MergeParams(nil, []byte("raw payload"))

	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	assert.Equal(t, "raw payload", merged["body"])
}
