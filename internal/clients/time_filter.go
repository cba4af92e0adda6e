package clients

import "fmt"

// TimeFilter restricts which posts are eligible for the top ranking.
type TimeFilter string

const (
	TimeFilterDay   TimeFilter = "day"
	TimeFilterWeek  TimeFilter = "week"
	TimeFilterMonth TimeFilter = "month"
	TimeFilterYear  TimeFilter = "year"
	TimeFilterAll   TimeFilter = "all"
)

func ParseTimeFilter(s string) (TimeFilter, error) {
	switch TimeFilter(s) {
	case TimeFilterDay, TimeFilterWeek, TimeFilterMonth, TimeFilterYear, TimeFilterAll:
		return TimeFilter(s), nil
	}
	return "", fmt.Errorf("invalid time filter %q (choose from day, week, month, year, all)", s)
}
