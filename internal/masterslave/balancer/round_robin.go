package balancer

import (
	"sync/atomic"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/meoying/msrouter/internal/errs"
)

var _ Balancer = &RoundRobin{}

// RoundRobin 轮询
// 每一个主从组有自己的计数器，互不影响
type RoundRobin struct {
	start    uint64
	counters syncx.Map[string, *atomic.Uint64]
}

type RoundRobinOption func(r *RoundRobin)

// WithStart 指定轮询的起点，主要是测试用
func WithStart(start uint64) RoundRobinOption {
	return func(r *RoundRobin) {
		r.start = start
	}
}

func NewRoundRobin(opts ...RoundRobinOption) *RoundRobin {
	r := &RoundRobin{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RoundRobin) Select(name string, _ string, slaves []string) (string, error) {
	if len(slaves) == 0 {
		return "", errs.NewErrNoSlaves(name)
	}
	cnt, ok := r.counters.Load(name)
	if !ok {
		fresh := &atomic.Uint64{}
		fresh.Store(r.start)
		cnt, _ = r.counters.LoadOrStore(name, fresh)
	}
	// Add 返回的是自增之后的值
	idx := (cnt.Add(1) - 1) % uint64(len(slaves))
	return slaves[idx], nil
}
