package schedule

import (
	"testing"
	"time"

	"gitee.com/flycash/review-reminder/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPlan(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		attempts int

		wantErr  error
		expected []time.Time
	}{
		{
			name:     "十天窗口三次尝试",
			start:    date(2025, time.January, 1),
			end:      date(2025, time.January, 11),
			attempts: 3,
			expected: []time.Time{
				time.Date(2025, time.January, 4, 12, 0, 0, 0, time.UTC),
				time.Date(2025, time.January, 7, 12, 0, 0, 0, time.UTC),
				time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "只有一个可用日，尝试次数被截断",
			start:    date(2025, time.January, 1),
			end:      date(2025, time.January, 2),
			attempts: 5,
			expected: []time.Time{
				time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "单次尝试只保留截止日",
			start:    date(2025, time.March, 1),
			end:      date(2025, time.March, 20),
			attempts: 1,
			expected: []time.Time{
				time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "截止日期早于开始日期",
			start:    date(2025, time.January, 11),
			end:      date(2025, time.January, 1),
			attempts: 3,
			wantErr:  errs.ErrInvalidParameter,
		},
		{
			name:     "同一天不构成窗口",
			start:    time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.January, 1, 23, 0, 0, 0, time.UTC),
			attempts: 3,
			wantErr:  errs.ErrInvalidParameter,
		},
		{
			name:     "尝试次数为零",
			start:    date(2025, time.January, 1),
			end:      date(2025, time.January, 11),
			attempts: 0,
			wantErr:  errs.ErrInvalidParameter,
		},
		{
			name:     "负的尝试次数",
			start:    date(2025, time.January, 1),
			end:      date(2025, time.January, 11),
			attempts: -1,
			wantErr:  errs.ErrInvalidParameter,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Plan(tc.start, tc.end, tc.attempts)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPlan_Properties(t *testing.T) {
	t.Parallel()

	start := date(2025, time.June, 1)
	for days := 1; days <= 40; days++ {
		end := start.AddDate(0, 0, days)
		for attempts := 1; attempts <= 12; attempts++ {
			got, err := Plan(start, end, attempts)
			require.NoError(t, err)
			require.NotEmpty(t, got)

			// 数量不超过请求的尝试次数
			assert.LessOrEqual(t, len(got), attempts)

			// 升序且任意两个时间点不在同一个自然日
			seen := make(map[string]struct{}, len(got))
			for i, slot := range got {
				if i > 0 {
					assert.True(t, got[i-1].Before(slot),
						"days=%d attempts=%d: %v 不是严格升序", days, attempts, got)
				}
				day := slot.Format(time.DateOnly)
				_, dup := seen[day]
				assert.False(t, dup, "days=%d attempts=%d: %s 出现了两次", days, attempts, day)
				seen[day] = struct{}{}
			}

			// 最后一个时间点一定落在截止日当天
			last := got[len(got)-1]
			assert.Equal(t, end.Format(time.DateOnly), last.Format(time.DateOnly))
			assert.Equal(t, finalHour, last.Hour())
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	t.Parallel()

	start := date(2025, time.February, 3)
	end := date(2025, time.February, 17)
	first, err := Plan(start, end, 4)
	require.NoError(t, err)
	second, err := Plan(start, end, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
