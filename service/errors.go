package service

import (
	"Agora/pkg/errorx"
	"Agora/pkg/log"
	"context"
	"errors"

	"go.uber.org/zap"
)

// storageErr 记录日志并包装成 StorageError；请求被取消时原样返回 ctx 错误
func storageErr(op string, err error, fields ...zap.Field) error {
	if canceled(err) {
		log.L.Debug("request canceled", append(fields, zap.String("op", op), zap.Error(err))...)
		return err
	}
	log.L.Error("storage failure", append(fields, zap.String("op", op), zap.Error(err))...)
	return errorx.Storage(op, err)
}

func canceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
