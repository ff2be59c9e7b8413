package configbuilder

import (
	"fmt"
	"strings"

	msconfig "github.com/meoying/msrouter/config/masterslave"
	"github.com/meoying/msrouter/internal/errs"
	"github.com/meoying/msrouter/internal/masterslave"
	"github.com/meoying/msrouter/internal/masterslave/balancer"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// RuleBuilder 根据配置信息构建主从规则和主从路由
type RuleBuilder struct {
	config *msconfig.Config
}

// LoadConfigFile 根据路径 path 加载配置文件
func (b *RuleBuilder) LoadConfigFile(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}
	var cfg msconfig.Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return fmt.Errorf("解析配置文件失败: %w", err)
	}
	b.SetConfig(cfg)
	return nil
}

func (b *RuleBuilder) SetConfig(cfg msconfig.Config) {
	b.config = &cfg
}

func (b *RuleBuilder) Config() msconfig.Config {
	return *b.config
}

func (b *RuleBuilder) checkConfig() error {
	if b.config == nil {
		return fmt.Errorf("未加载或设置配置文件")
	}
	return nil
}

// BuildRules 一次性校验所有的主从组，把全部错误都返回
func (b *RuleBuilder) BuildRules() ([]masterslave.Rule, error) {
	if err := b.checkConfig(); err != nil {
		return nil, err
	}
	var err error
	rules := make([]masterslave.Rule, 0, len(b.config.Rules))
	seen := make(map[string]struct{}, len(b.config.Rules))
	for _, rc := range b.config.Rules {
		key := strings.ToLower(strings.TrimSpace(rc.Name))
		if _, ok := seen[key]; ok {
			err = multierr.Append(err, errs.NewErrDuplicateRule(rc.Name))
			continue
		}
		seen[key] = struct{}{}
		rule, er := buildRule(rc)
		if er != nil {
			err = multierr.Append(err, er)
			continue
		}
		rules = append(rules, rule)
	}
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func buildRule(rc msconfig.Rule) (masterslave.Rule, error) {
	if err := checkWeights(rc); err != nil {
		return masterslave.Rule{}, err
	}
	bl, err := balancer.New(rc.LoadBalance.Type, rc.LoadBalance.Seed, rc.LoadBalance.Weights)
	if err != nil {
		return masterslave.Rule{}, fmt.Errorf("主从组 %s: %w", rc.Name, err)
	}
	return masterslave.NewRule(rc.Name, rc.Master, rc.Slaves, bl)
}

// checkWeights 权重里面的每一个从库都必须存在，避免写错名字之后权重悄悄失效
func checkWeights(rc msconfig.Rule) error {
	for slave := range rc.LoadBalance.Weights {
		found := false
		for _, s := range rc.Slaves {
			if strings.EqualFold(s, slave) {
				found = true
				break
			}
		}
		if !found {
			return errs.NewErrInvalidRule(rc.Name, fmt.Sprintf("权重中的从库 %s 不存在", slave))
		}
	}
	return nil
}

func (b *RuleBuilder) BuildRouter(opts ...masterslave.Option) (*masterslave.Router, error) {
	rules, err := b.BuildRules()
	if err != nil {
		return nil, err
	}
	return masterslave.NewRouter(rules, opts...)
}
