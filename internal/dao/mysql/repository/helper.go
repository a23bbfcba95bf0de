// Package repository 提供数据访问层接口与实现
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
package repository

import (
	"errors"

	"quanzi_server/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError 包装数据库错误
// 按错误类型映射错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - ErrDuplicatedKey  -> CodeConflict（依赖 gorm.Config{TranslateError: true}）
//   - 其他              -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.Wrap(err, errorx.CodeConflict, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 包装数据库错误（支持格式化消息）
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorx.Wrapf(err, errorx.CodeConflict, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// IsDuplicateKey 判断是否为唯一键冲突
// 用于会话并发首建等需要区分冲突与其他失败的场景
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errorx.GetCode(err) == errorx.CodeConflict
}
