package masterslave

import "sync/atomic"

// State 一个会话（或者事务）内的主库访问状态
// 一旦访问过主库，这个会话后续的读请求都走主库，保证读到自己的写
// 生命周期由会话管理方负责，路由只会读取和标记
type State struct {
	masterVisited atomic.Bool
}

func NewState() *State {
	return &State{}
}

// MarkMasterVisited 幂等
func (s *State) MarkMasterVisited() {
	s.masterVisited.Store(true)
}

func (s *State) IsMasterVisited() bool {
	return s.masterVisited.Load()
}

// Reset 在会话结束（提交、回滚、连接关闭）的时候调用
func (s *State) Reset() {
	s.masterVisited.Store(false)
}
