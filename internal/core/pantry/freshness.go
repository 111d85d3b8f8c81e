package pantry

import "time"

// DateLayout 到期日的輸入輸出格式
const DateLayout = "2006-01-02"

// ClassifyFreshness 依到期日判定新鮮度。兩個時間都先截斷到日曆日，
// 避免時分秒造成差一天的誤判。無到期日一律視為新鮮。
func ClassifyFreshness(expiry *time.Time, now time.Time) Freshness {
	if expiry == nil {
		return FreshnessFresh
	}

	diffDays := int(truncateToDay(*expiry).Sub(truncateToDay(now)).Hours() / 24)
	switch {
	case diffDays < 0:
		return FreshnessExpired
	case diffDays <= 2:
		return FreshnessUseSoon
	default:
		return FreshnessFresh
	}
}

// truncateToDay 去掉時分秒，只留日曆日
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
