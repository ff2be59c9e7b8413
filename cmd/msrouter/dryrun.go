package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecodeclub/ekit/slice"
	"github.com/hashicorp/go-multierror"
	"github.com/meoying/msrouter/internal/masterslave"
	"github.com/meoying/msrouter/internal/route"
	"github.com/meoying/msrouter/internal/session"
)

// RouteOutput 一条语句的路由结果
type RouteOutput struct {
	ConnID    uint32
	Statement int
	Units     []*route.TableUnit
}

// dryRun 按计划执行主从路由，单条语句失败不影响后面的语句
// 每个 Session 执行完之后都会结束会话
func dryRun(ctx context.Context, router *masterslave.Router, plan Plan, l *slog.Logger) ([]RouteOutput, error) {
	mgr := session.NewManager()
	var outputs []RouteOutput
	var err *multierror.Error
	for _, sess := range plan.Sessions {
		state := mgr.Begin(sess.ConnID)
		for idx, stmt := range sess.Statements {
			res, er := router.Route(stmtContext(ctx, stmt), state, toResult(stmt))
			if er != nil {
				err = multierror.Append(err, fmt.Errorf("连接 %d 第 %d 条语句路由失败: %w", sess.ConnID, idx, er))
				continue
			}
			for _, unit := range res.TableUnits {
				l.Info("路由结果",
					slog.Uint64("connID", uint64(sess.ConnID)),
					slog.Int("statement", idx),
					slog.String("sqlType", res.SQLType.String()),
					slog.String("logicDataSource", unit.LogicDataSourceName),
					slog.String("dataSource", unit.DataSourceName),
					slog.Any("tables", unit.ActualTables()))
			}
			outputs = append(outputs, RouteOutput{ConnID: sess.ConnID, Statement: idx, Units: res.TableUnits})
		}
		mgr.End(sess.ConnID)
	}
	return outputs, err.ErrorOrNil()
}

func stmtContext(ctx context.Context, stmt Statement) context.Context {
	if stmt.UseMaster {
		return masterslave.UseMaster(ctx)
	}
	return ctx
}

func toResult(stmt Statement) *route.Result {
	return &route.Result{
		SQLType: route.ParseSQLType(stmt.Type),
		TableUnits: slice.Map(stmt.Units, func(idx int, src Unit) *route.TableUnit {
			return &route.TableUnit{
				DataSourceName: src.DataSource,
				RoutingTables: slice.Map(src.Tables, func(idx int, src Table) route.RoutingTable {
					return route.RoutingTable{LogicTable: src.Logic, ActualTable: src.Actual}
				}),
			}
		}),
	}
}
