package middleware

import "errors"

var errBadScheme = errors.New("authorization 格式错误")
