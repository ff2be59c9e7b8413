package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/meoying/msrouter/internal/configbuilder"
	"github.com/meoying/msrouter/internal/masterslave"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	cfile := pflag.String("config",
		"config/masterslave.yaml", "主从配置文件路径")
	pfile := pflag.String("plan",
		"config/plan.yaml", "路由计划文件路径")
	debug := pflag.Bool("debug", false, "输出调试日志")
	pflag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	var builder configbuilder.RuleBuilder
	if err := builder.LoadConfigFile(*cfile); err != nil {
		panic(err)
	}
	router, err := builder.BuildRouter(masterslave.WithLogger(l))
	if err != nil {
		panic(fmt.Errorf("初始化主从路由失败 %w", err))
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*pfile)
	if err = viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("读取路由计划失败 %w", err))
	}
	var plan Plan
	if err = viper.Unmarshal(&plan); err != nil {
		panic(fmt.Errorf("解析路由计划失败 %w", err))
	}

	if _, err = dryRun(context.Background(), router, plan, l); err != nil {
		l.Error("部分语句路由失败", slog.Any("err", err))
		os.Exit(1)
	}
}
