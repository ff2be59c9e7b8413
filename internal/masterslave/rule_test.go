package masterslave

import (
	"context"
	"testing"

	"github.com/meoying/msrouter/internal/errs"
	"github.com/meoying/msrouter/internal/masterslave/balancer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	testCases := []struct {
		name    string
		rule    string
		master  string
		slaves  []string
		want    []string
		wantErr error
	}{
		{
			name:   "正常",
			rule:   "ms_group",
			master: "db_master",
			slaves: []string{"db_slave1", "db_slave2"},
			want:   []string{"db_slave1", "db_slave2"},
		},
		{
			name:   "从库去重",
			rule:   "ms_group",
			master: "db_master",
			slaves: []string{"db_slave2", "db_slave1", "db_slave2"},
			want:   []string{"db_slave2", "db_slave1"},
		},
		{
			name:   "没有从库",
			rule:   "ms_group",
			master: "db_master",
			want:   []string{},
		},
		{
			name:    "名字为空",
			rule:    "  ",
			master:  "db_master",
			wantErr: errs.ErrConfiguration,
		},
		{
			name:    "没有主库",
			rule:    "ms_group",
			wantErr: errs.ErrConfiguration,
		},
		{
			name:    "从库和主库相同",
			rule:    "ms_group",
			master:  "db_master",
			slaves:  []string{"db_slave1", "db_master"},
			wantErr: errs.ErrConfiguration,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := NewRule(tc.rule, tc.master, tc.slaves, nil)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.rule, rule.Name)
			assert.Equal(t, tc.master, rule.MasterDataSource)
			assert.Equal(t, tc.want, rule.SlaveDataSources)
			assert.IsType(t, &balancer.RoundRobin{}, rule.Balancer)
		})
	}
}

func TestNewRule_CopySlaves(t *testing.T) {
	slaves := []string{"db_slave1", "db_slave2"}
	rule, err := NewRule("ms_group", "db_master", slaves, balancer.NewRandom(1))
	require.NoError(t, err)
	slaves[0] = "db_master"
	assert.Equal(t, []string{"db_slave1", "db_slave2"}, rule.SlaveDataSources)
}

func TestState(t *testing.T) {
	s := NewState()
	assert.False(t, s.IsMasterVisited())
	s.MarkMasterVisited()
	s.MarkMasterVisited()
	assert.True(t, s.IsMasterVisited())
	s.Reset()
	assert.False(t, s.IsMasterVisited())
}

func TestUseMaster(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsUseMaster(ctx))
	assert.True(t, IsUseMaster(UseMaster(ctx)))
	// 派生出来的 context 继承标记
	child, cancel := context.WithCancel(UseMaster(ctx))
	defer cancel()
	assert.True(t, IsUseMaster(child))
}
