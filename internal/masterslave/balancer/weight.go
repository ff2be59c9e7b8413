package balancer

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/meoying/msrouter/internal/errs"
)

var _ Balancer = &Weight{}

// Weight 按照权重随机
// 没有配置权重的从库权重为 1，权重小于等于 0 的从库不会被选中
// 从库名字不区分大小写，viper 加载配置的时候会把 key 转成小写
type Weight struct {
	weights map[string]int

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewWeight(weights map[string]int, seed int64) *Weight {
	lower := make(map[string]int, len(weights))
	for slave, weight := range weights {
		lower[strings.ToLower(slave)] = weight
	}
	return &Weight{
		weights: lower,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

func (w *Weight) weightOf(slave string) int {
	weight, ok := w.weights[strings.ToLower(slave)]
	if !ok {
		return 1
	}
	return max(weight, 0)
}

func (w *Weight) Select(name string, _ string, slaves []string) (string, error) {
	if len(slaves) == 0 {
		return "", errs.NewErrNoSlaves(name)
	}
	total := 0
	for _, slave := range slaves {
		total += w.weightOf(slave)
	}
	if total == 0 {
		return "", errs.NewErrInvalidRule(name, "所有从库的权重都是 0")
	}
	w.mu.Lock()
	point := w.rnd.Intn(total)
	w.mu.Unlock()
	for _, slave := range slaves {
		point -= w.weightOf(slave)
		if point < 0 {
			return slave, nil
		}
	}
	// 不会走到这里
	return slaves[len(slaves)-1], nil
}
