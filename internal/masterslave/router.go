package masterslave

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/meoying/msrouter/internal/errs"
	"github.com/meoying/msrouter/internal/route"
)

// Router 在分库分表路由之后进行主从路由
// 把绑定在主从组上的 TableUnit 改写为真实的主库或者从库
type Router struct {
	rules  atomic.Pointer[[]Rule]
	logger *slog.Logger
}

type Option func(r *Router)

func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

func NewRouter(rules []Rule, opts ...Option) (*Router, error) {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if err := r.Reload(rules); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload 整体替换规则
// 已经开始的路由继续使用旧的规则
func (r *Router) Reload(rules []Rule) error {
	names := make(map[string]struct{}, len(rules))
	for _, rule := range rules {
		if err := checkRule(rule); err != nil {
			return err
		}
		key := strings.ToLower(rule.Name)
		if _, ok := names[key]; ok {
			return errs.NewErrDuplicateRule(rule.Name)
		}
		names[key] = struct{}{}
	}
	cp := cloneRules(rules)
	r.rules.Store(&cp)
	return nil
}

// Rules 返回规则的副本，修改副本不会影响正在使用的规则
func (r *Router) Rules() []Rule {
	return cloneRules(*r.rules.Load())
}

// checkRule 直接构造的 Rule 没有经过 NewRule 校验
func checkRule(rule Rule) error {
	switch {
	case strings.TrimSpace(rule.Name) == "":
		return errs.NewErrInvalidRule(rule.Name, "名字不能为空")
	case rule.MasterDataSource == "":
		return errs.NewErrInvalidRule(rule.Name, "未配置主库")
	case rule.Balancer == nil:
		return errs.NewErrInvalidRule(rule.Name, "未配置负载均衡算法")
	}
	return nil
}

func cloneRules(rules []Rule) []Rule {
	res := slices.Clone(rules)
	for i := range res {
		res[i].SlaveDataSources = slices.Clone(res[i].SlaveDataSources)
	}
	return res
}

type replacement struct {
	idx  int
	unit *route.TableUnit
}

// Route 原地改写 res 并且返回 res
// 没有命中任何规则的 TableUnit 保持不变。
// 任何一个 TableUnit 解析失败都会返回 error，此时 res 不会被修改。
// state 为 nil 的时候相当于一个用完即弃的会话。
func (r *Router) Route(ctx context.Context, state *State, res *route.Result) (*route.Result, error) {
	if state == nil {
		state = NewState()
	}
	rules := *r.rules.Load()
	var replacements []replacement
	for _, rule := range rules {
		for idx, unit := range res.TableUnits {
			if !rule.matches(unit.DataSourceName) {
				continue
			}
			target, err := r.resolve(ctx, state, rule, res.SQLType)
			if err != nil {
				return nil, err
			}
			r.logger.Debug("主从路由",
				slog.String("rule", rule.Name),
				slog.String("sqlType", res.SQLType.String()),
				slog.String("target", target))
			replacements = append(replacements, replacement{
				idx: idx,
				unit: &route.TableUnit{
					DataSourceName:      target,
					LogicDataSourceName: unit.DataSourceName,
					RoutingTables:       unit.RoutingTables,
				},
			})
		}
	}
	if len(replacements) == 0 {
		return res, nil
	}
	matched := make(map[int]struct{}, len(replacements))
	for _, rep := range replacements {
		matched[rep.idx] = struct{}{}
	}
	units := make([]*route.TableUnit, 0, len(res.TableUnits))
	for idx, unit := range res.TableUnits {
		if _, ok := matched[idx]; !ok {
			units = append(units, unit)
		}
	}
	for _, rep := range replacements {
		units = append(units, rep.unit)
	}
	res.TableUnits = units
	return res, nil
}

// resolve 写请求、已经访问过主库、或者强制走主库的时候使用主库，否则交给负载均衡选从库
func (r *Router) resolve(ctx context.Context, state *State, rule Rule, typ route.SQLType) (string, error) {
	if !typ.IsRead() || state.IsMasterVisited() || IsUseMaster(ctx) {
		state.MarkMasterVisited()
		return rule.MasterDataSource, nil
	}
	return rule.Balancer.Select(rule.Name, rule.MasterDataSource, rule.SlaveDataSources)
}
