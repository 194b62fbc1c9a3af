package mysql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在，或存在但不属于调用者（两者对外不区分）
	ErrNotFound = errors.New("not found")
	// ErrConflict 唯一键冲突且没有约定的自动兜底
	ErrConflict = errors.New("conflict")
	// ErrStore 其他一切后端失败
	ErrStore = errors.New("store error")
)

// translate 把 gorm 错误归入仓储错误族
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
}
