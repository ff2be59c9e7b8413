package route

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// SQLType 语句类型
// 这里只区分读和写，除了纯查询以外的语句（DML、DDL、管理语句）都当成写
type SQLType uint8

const (
	Write SQLType = iota
	Read
)

func (s SQLType) IsRead() bool {
	return s == Read
}

func (s SQLType) String() string {
	if s.IsRead() {
		return "READ"
	}
	return "WRITE"
}

// ParseSQLType 只有 read（不区分大小写）会被认为是读，其余一律按照写处理
func ParseSQLType(typ string) SQLType {
	if strings.EqualFold(strings.TrimSpace(typ), "read") {
		return Read
	}
	return Write
}

// RoutingTable 逻辑表和真实表的对应关系，由上游的分片路由计算得到
type RoutingTable struct {
	LogicTable  string
	ActualTable string
}

// TableUnit 一个路由单元
type TableUnit struct {
	// DataSourceName 当前绑定的数据源
	DataSourceName string
	// LogicDataSourceName 改写之前绑定的数据源名字
	LogicDataSourceName string
	RoutingTables       []RoutingTable
}

// ActualTables 返回所有的真实表
func (u *TableUnit) ActualTables() []string {
	return slice.Map(u.RoutingTables, func(idx int, src RoutingTable) string {
		return src.ActualTable
	})
}

// Result 上游路由的结果
// 主从路由会原地修改 TableUnits
type Result struct {
	SQLType    SQLType
	TableUnits []*TableUnit
}

// DataSourceNames 返回所有绑定的数据源，去重，保持第一次出现的顺序
func (r *Result) DataSourceNames() []string {
	res := make([]string, 0, len(r.TableUnits))
	for _, unit := range r.TableUnits {
		if !slice.Contains(res, unit.DataSourceName) {
			res = append(res, unit.DataSourceName)
		}
	}
	return res
}
