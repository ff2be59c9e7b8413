package session

import (
	"github.com/ecodeclub/ekit/syncx"
	"github.com/meoying/msrouter/internal/masterslave"
)

// Manager 按照客户端连接 ID 管理主从路由的会话状态
// 事务和连接是绑定的，所以会话状态也跟着连接走
type Manager struct {
	states syncx.Map[uint32, *masterslave.State]
}

func NewManager() *Manager {
	return &Manager{}
}

// Begin 开启新的会话，如果之前的会话还没有结束，那么会被覆盖
func (m *Manager) Begin(connID uint32) *masterslave.State {
	state := masterslave.NewState()
	m.states.Store(connID, state)
	return state
}

// State 获取连接当前的会话状态，不存在的时候开启一个
func (m *Manager) State(connID uint32) *masterslave.State {
	if state, ok := m.states.Load(connID); ok {
		return state
	}
	state, _ := m.states.LoadOrStore(connID, masterslave.NewState())
	return state
}

// End 提交、回滚或者连接关闭的时候调用
func (m *Manager) End(connID uint32) {
	if state, ok := m.states.LoadAndDelete(connID); ok {
		state.Reset()
	}
}
