package masterslave

type Config struct {
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Rule 一个主从组
type Rule struct {
	// Name 分库分表路由之后绑定的逻辑数据源名字
	Name        string      `json:"name" yaml:"name"`
	Master      string      `json:"master" yaml:"master"`
	Slaves      []string    `json:"slaves,omitempty" yaml:"slaves,omitempty"`
	LoadBalance LoadBalance `json:"loadBalance" yaml:"loadBalance"`
}

type LoadBalance struct {
	// Type round_robin、random、weight，默认 round_robin
	Type string `json:"type" yaml:"type"`
	Seed int64  `json:"seed" yaml:"seed"`
	// Weights 从库名字 => 权重，只有 weight 用到
	Weights map[string]int `json:"weights,omitempty" yaml:"weights,omitempty"`
}
