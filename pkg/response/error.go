package response

import (
	"Agora/pkg/errorx"
	"Agora/pkg/log"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// FromError 把核心层错误映射成 HTTP 状态码和提示
func FromError(err error) (int, Response) {
	var be *BizError
	if errors.As(err, &be) {
		return be.Code, Response{Code: be.Code, Msg: be.Msg}
	}
	var ve *errorx.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, Response{Code: http.StatusBadRequest, Msg: ve.Error()}
	case errors.Is(err, errorx.ErrNotFound):
		return http.StatusNotFound, Response{Code: http.StatusNotFound, Msg: err.Error()}
	case errors.Is(err, errorx.ErrForbidden):
		return http.StatusForbidden, Response{Code: http.StatusForbidden, Msg: "没有权限"}
	case errors.Is(err, errorx.ErrTopicLocked):
		return http.StatusConflict, Response{Code: http.StatusConflict, Msg: "主题已锁定"}
	}
	// 存储错误不向外暴露细节
	return http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Msg: "系统异常"}
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path), zap.Stack("stack"))
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			status, body := FromError(c.Errors.Last().Err)
			c.JSON(status, body)
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
