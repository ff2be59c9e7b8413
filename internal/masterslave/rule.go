package masterslave

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/meoying/msrouter/internal/errs"
	"github.com/meoying/msrouter/internal/masterslave/balancer"
)

// Rule 一个主从组的配置
// 构造之后不能再修改，会被多个会话并发读取
type Rule struct {
	// Name 上游路由给 TableUnit 绑定的逻辑数据源名字
	Name             string
	MasterDataSource string
	SlaveDataSources []string
	Balancer         balancer.Balancer
}

// NewRule 校验并创建 Rule
// slaves 会被复制一份，去重之后保持原有顺序
// bl 为 nil 的时候使用轮询
func NewRule(name, master string, slaves []string, bl balancer.Balancer) (Rule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Rule{}, errs.NewErrInvalidRule(name, "名字不能为空")
	}
	if master == "" {
		return Rule{}, errs.NewErrInvalidRule(name, "未配置主库")
	}
	dedup := make([]string, 0, len(slaves))
	for _, slave := range slaves {
		if slave == master {
			return Rule{}, errs.NewErrInvalidRule(name, "从库不能和主库相同")
		}
		if !slice.Contains(dedup, slave) {
			dedup = append(dedup, slave)
		}
	}
	if bl == nil {
		bl = balancer.NewRoundRobin()
	}
	return Rule{
		Name:             name,
		MasterDataSource: master,
		SlaveDataSources: dedup,
		Balancer:         bl,
	}, nil
}

func (r Rule) matches(dataSourceName string) bool {
	return strings.EqualFold(r.Name, dataSourceName)
}
