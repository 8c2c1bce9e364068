package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 查无此 group/user/post，边界层转成 404
	ErrNotFound = errors.New("not found")
	// ErrForbidden 登录了但不是资源归属者，边界层做静默跳转
	ErrForbidden = errors.New("forbidden")
)

// 存储层的未命中统一翻译成 ErrNotFound，其余错误原样上抛
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
