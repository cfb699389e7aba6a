package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/go-atlas/atlas/internal/engine/service"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingOperLogRepo struct {
	repo.IOperLogRepository
	recorded chan *model.OperLog
}

func (c *capturingOperLogRepo) CreateOperLog(operLog *model.OperLog) error {
	c.recorded <- operLog
	return nil
}

func waitForRecord(t *testing.T, ch chan *model.OperLog) *model.OperLog {
	t.Helper()
	select {
	case operLog := <-ch:
		return operLog
	case <-time.After(2 * time.Second):
		t.Fatal("no operation log recorded")
		return nil
	}
}

func TestAuditRecordsFailureAndPropagatesError(t *testing.T) {
	operLogs := &capturingOperLogRepo{recorded: make(chan *model.OperLog, 2)}
	auditSvc := service.NewAuditService(operLogs)

	var handlerErr error
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			handlerErr = err
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Post("/system/user", Audit(auditSvc, "用户管理", model.BusinessTypeCreate), func(c *fiber.Ctx) error {
		return errors.New("duplicate username")
	})

	req := httptest.NewRequest("POST", "/system/user?pageNum=1", strings.NewReader(`{"username":"atlas"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// 处理错误原样到达错误处理器
	require.Error(t, handlerErr)
	assert.Equal(t, "duplicate username", handlerErr.Error())

	operLog := waitForRecord(t, operLogs.recorded)
	assert.Equal(t, model.OperStatusFailure, operLog.Status)
	assert.Equal(t, "duplicate username", operLog.ErrorMsg)
	assert.Equal(t, "用户管理", operLog.Title)
	assert.Equal(t, model.BusinessTypeCreate, operLog.BusinessType)

	// 只落一条记录
	select {
	case extra := <-operLogs.recorded:
		t.Fatalf("unexpected extra operation log: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestAuditRecordsSuccess(t *testing.T) {
	operLogs := &capturingOperLogRepo{recorded: make(chan *model.OperLog, 1)}
	auditSvc := service.NewAuditService(operLogs)

	app := fiber.New()
	app.Post("/system/post", Audit(auditSvc, "岗位管理", model.BusinessTypeCreate), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"code": 200, "msg": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/system/post", strings.NewReader(`{"postCode":"dev"}`)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	operLog := waitForRecord(t, operLogs.recorded)
	assert.Equal(t, model.OperStatusSuccess, operLog.Status)
	assert.Empty(t, operLog.ErrorMsg)
	assert.Contains(t, operLog.JsonResult, `"code":200`)
}
