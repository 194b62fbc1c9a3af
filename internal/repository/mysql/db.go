package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB 连接 MySQL。TranslateError 开启后唯一键冲突会被翻译成
// gorm.ErrDuplicatedKey，仓储层依赖这个信号区分 Conflict 和其他错误。
func InitDB(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}
	DB = db
	return nil
}
