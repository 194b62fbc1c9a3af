package pkg

import (
	"encoding/hex"

	"golang.org/x/crypto/scrypt"
)

// PasswordSalt 全局口令盐，启动时由 config 覆盖
var PasswordSalt = "yuyu-dev-salt"

// scrypt 参数（推荐交互式取值）
const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// HashPassword 确定性口令散列：同一 (password, salt) 永远得到同一结果，
// 存储层才能按 (email, password_hash) 精确匹配完成认证。
// salt 为全局配置，不落库。
func HashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
