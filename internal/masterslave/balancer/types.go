package balancer

const (
	TypeRoundRobin = "round_robin"
	TypeRandom     = "random"
	TypeWeight     = "weight"
)

//go:generate mockgen -source=./types.go -destination=mocks/balancer.mock.go -package=mocks -typed Balancer
type Balancer interface {
	// Select 从 slaves 里面选出一个从库
	// master 只是作为参考提供给需要它的算法，任何实现都不能返回 master
	// slaves 为空的时候必须返回 errs.ErrConfiguration
	// slaves 是规则持有的数据，实现不能修改它
	Select(name string, master string, slaves []string) (string, error)
}
