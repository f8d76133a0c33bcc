package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gitee.com/flycash/review-reminder/internal/errs"
)

const (
	// 中间催办固定在当天 12 点
	reminderHour = 12
	// 最后一次机会固定在截止日 10 点
	finalHour = 10

	hoursPerDay = 24
)

// Plan 在日期窗口内铺开最多 attempts 个发送时间点。
// 纯函数：相同入参一定得到相同结果。
// 保证结果按时间升序、任意两个时间点不落在同一个自然日、最后一个时间点一定在截止日当天。
func Plan(start, end time.Time, attempts int) ([]time.Time, error) {
	if attempts <= 0 {
		return nil, fmt.Errorf("%w: attempts = %d", errs.ErrInvalidParameter, attempts)
	}
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)
	if !endDay.After(startDay) {
		return nil, fmt.Errorf("%w: 截止日期 %s 必须晚于开始日期 %s",
			errs.ErrInvalidParameter, endDay.Format(time.DateOnly), startDay.Format(time.DateOnly))
	}

	// 可用天数不含开始当天，含截止当天
	availableDays := int(endDay.Sub(startDay) / (hoursPerDay * time.Hour))
	actual := attempts
	if availableDays < actual {
		actual = availableDays
	}
	if actual == 0 {
		return nil, nil
	}

	final := endDay.Add(finalHour * time.Hour)
	if actual == 1 {
		return []time.Time{final}, nil
	}

	// 其余 actual-1 个时间点均匀铺在第 1..availableDays-1 天上
	step := float64(availableDays-1) / float64(actual)
	slots := make([]time.Time, 0, actual)
	for i := 1; i < actual; i++ {
		offset := int(math.Round(step * float64(i)))
		slots = append(slots, startDay.AddDate(0, 0, offset).Add(reminderHour*time.Hour))
	}
	slots = append(slots, final)

	slots = dedupeByDay(slots)
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Before(slots[j])
	})
	return slots, nil
}

// dedupeByDay 按自然日去重，保留每天第一个出现的时间点。
// step 取整后相邻序号可能撞到同一天。
func dedupeByDay(slots []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(slots))
	result := make([]time.Time, 0, len(slots))
	for _, slot := range slots {
		day := slot.Format(time.DateOnly)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		result = append(result, slot)
	}
	return result
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
