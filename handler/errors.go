package handler

import (
	"Shotshelf/pkg/response"
	"Shotshelf/service"
	"errors"
	"io"
)

// bizError 把 service 的错误类别映射成 HTTP 状态，其余交给 Wrap 按 500 处理
func bizError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return response.BadRequest(err.Error())
	case errors.Is(err, service.ErrNotFound):
		return response.NotFound(err.Error())
	default:
		return err
	}
}

// bindError 空 body 交给 service 校验必填字段
func bindError(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return response.BadRequest("invalid request body")
}
