package service

import "errors"

// ErrInvalidArgument 调用方输入未通过前置校验，根本没碰存储层
var ErrInvalidArgument = errors.New("invalid argument")
