package middleware

import (
	"runtime/debug"

	"github.com/go-atlas/atlas/pkg/http"
	"github.com/go-atlas/atlas/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// ExceptionMiddleware 异常中间件
// 捕获 panic 错误，返回统一错误响应
// This function is used as the middleware of fiber.
func ExceptionMiddleware(c *fiber.Ctx) error {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("panic: %v\n%s", err, debug.Stack())
			_ = http.WithRepMsg(c, http.InternalError.Code, errorToString(err))
		}
	}()

	return c.Next()
}

func errorToString(err any) string {
	switch v := err.(type) {
	case error:
		// 不向客户端透出堆栈
		log.Errorf("panic error: %v", v)
		return http.InternalError.Msg
	case string:
		return v
	default:
		return http.InternalError.Msg
	}
}
