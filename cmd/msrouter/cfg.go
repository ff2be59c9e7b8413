package main

// Plan 演练用的路由计划
// 每个 Session 模拟一个客户端连接，里面的语句按顺序执行
type Plan struct {
	Sessions []Session `yaml:"sessions"`
}

type Session struct {
	ConnID     uint32      `yaml:"connID"`
	Statements []Statement `yaml:"statements"`
}

type Statement struct {
	// Type read 或者 write
	Type      string `yaml:"type"`
	UseMaster bool   `yaml:"useMaster"`
	Units     []Unit `yaml:"units"`
}

type Unit struct {
	DataSource string  `yaml:"dataSource"`
	Tables     []Table `yaml:"tables"`
}

type Table struct {
	Logic  string `yaml:"logic"`
	Actual string `yaml:"actual"`
}
