package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager(t *testing.T) {
	mgr := NewManager()

	state := mgr.State(1)
	// 同一个连接拿到的是同一个状态
	assert.Same(t, state, mgr.State(1))
	assert.NotSame(t, state, mgr.State(2))

	state.MarkMasterVisited()
	assert.True(t, mgr.State(1).IsMasterVisited())
	assert.False(t, mgr.State(2).IsMasterVisited())

	mgr.End(1)
	// 旧的引用也被重置，避免结束之后还被误用
	assert.False(t, state.IsMasterVisited())
	assert.NotSame(t, state, mgr.State(1))

	// 没有开始过的连接结束也不会有问题
	mgr.End(100)
}

func TestManager_Begin(t *testing.T) {
	mgr := NewManager()
	old := mgr.Begin(1)
	old.MarkMasterVisited()

	fresh := mgr.Begin(1)
	assert.NotSame(t, old, fresh)
	assert.False(t, fresh.IsMasterVisited())
	assert.Same(t, fresh, mgr.State(1))
}
