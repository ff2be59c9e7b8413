package balancer

import (
	"strings"

	"github.com/meoying/msrouter/internal/errs"
)

// New 根据名字创建负载均衡算法，没有指定的时候默认轮询
// seed 只对随机类的算法有效，weights 只对 weight 有效
func New(typ string, seed int64, weights map[string]int) (Balancer, error) {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "", TypeRoundRobin:
		return NewRoundRobin(), nil
	case TypeRandom:
		return NewRandom(seed), nil
	case TypeWeight:
		return NewWeight(weights, seed), nil
	default:
		return nil, errs.NewErrUnknownBalancer(typ)
	}
}
