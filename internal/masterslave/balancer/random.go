package balancer

import (
	"math/rand"
	"sync"

	"github.com/meoying/msrouter/internal/errs"
)

var _ Balancer = &Random{}

// Random 随机选择一个从库
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom seed 相同的时候选择的序列也相同
func NewRandom(seed int64) *Random {
	return &Random{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Select(name string, _ string, slaves []string) (string, error) {
	if len(slaves) == 0 {
		return "", errs.NewErrNoSlaves(name)
	}
	r.mu.Lock()
	idx := r.rnd.Intn(len(slaves))
	r.mu.Unlock()
	return slaves[idx], nil
}
