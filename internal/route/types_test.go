package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSQLType(t *testing.T) {
	testCases := []struct {
		name string
		typ  string
		want SQLType
	}{
		{name: "read", typ: "read", want: Read},
		{name: "大小写和空格", typ: "  READ ", want: Read},
		{name: "write", typ: "write", want: Write},
		{name: "DDL按照写处理", typ: "ddl", want: Write},
		{name: "空字符串按照写处理", typ: "", want: Write},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSQLType(tc.typ)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want == Read, got.IsRead())
		})
	}
}

func TestResult_DataSourceNames(t *testing.T) {
	res := &Result{
		TableUnits: []*TableUnit{
			{DataSourceName: "ds_1"},
			{DataSourceName: "ds_0"},
			{DataSourceName: "ds_1"},
		},
	}
	assert.Equal(t, []string{"ds_1", "ds_0"}, res.DataSourceNames())
	assert.Empty(t, (&Result{}).DataSourceNames())
}

func TestTableUnit_ActualTables(t *testing.T) {
	unit := &TableUnit{
		RoutingTables: []RoutingTable{
			{LogicTable: "t_order", ActualTable: "t_order_0"},
			{LogicTable: "t_order_item", ActualTable: "t_order_item_0"},
		},
	}
	assert.Equal(t, []string{"t_order_0", "t_order_item_0"}, unit.ActualTables())
}
