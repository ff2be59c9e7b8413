package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrConfiguration 配置错误，属于调用方或者配置本身的问题，不能通过路由兜底
var ErrConfiguration = errors.New("主从配置错误")

// NewErrNoSlaves 读请求命中了没有从库的主从组
func NewErrNoSlaves(name string) error {
	return fmt.Errorf("%w: 主从组 %s 未配置从库", ErrConfiguration, name)
}

func NewErrDuplicateRule(name string) error {
	return fmt.Errorf("%w: 主从组 %s 重复定义", ErrConfiguration, name)
}

func NewErrUnknownBalancer(typ string) error {
	return fmt.Errorf("%w: 未知的负载均衡算法 %s", ErrConfiguration, typ)
}

func NewErrInvalidRule(name, reason string) error {
	return fmt.Errorf("%w: 主从组 %s %s", ErrConfiguration, name, reason)
}
