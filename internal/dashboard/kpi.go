package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/nfrund/hive/internal/format"
)

// FollowerGoal is the Pulse department's follower target.
const FollowerGoal = 5000

// DepartmentPlaceholder in a KPI footer is replaced by the selected department's label.
const DepartmentPlaceholder = "{department}"

// TotalFollowers sums the followers of accounts.
func TotalFollowers(accounts []Account) int {
	total := 0
	for _, a := range accounts {
		total += a.Followers
	}
	return total
}

// AverageEngagement is the mean engagement rate rounded to one decimal.
// An empty list averages to zero.
func AverageEngagement(accounts []Account) float64 {
	if len(accounts) == 0 {
		return 0
	}
	var sum float64
	for _, a := range accounts {
		sum += a.Engagement
	}
	return math.Round(sum/float64(len(accounts))*10) / 10
}

// GoalProgress is total as a rounded percentage of goal.
func GoalProgress(total, goal int) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(goal) * 100))
}

// PulseKPIs computes the follower and engagement cards from accounts and
// interleaves them with the static cards: followers, static[0], engagement,
// then the rest of static.
func PulseKPIs(accounts []Account, static []StatCard) []StatCard {
	total := TotalFollowers(accounts)
	followers := StatCard{
		Title:  "総フォロワー数",
		Value:  format.Number(int64(total)),
		Change: &Change{Value: "2.8%", Positive: true},
		Footer: fmt.Sprintf("目標: %s (%d%%達成)", format.Number(FollowerGoal), GoalProgress(total, FollowerGoal)),
		Color:  "blue",
	}
	engagement := StatCard{
		Title:  "平均エンゲージメント",
		Value:  format.Percent(AverageEngagement(accounts), 1),
		Change: &Change{Value: "0.3%", Positive: true},
		Footer: "業界平均: 3.2%",
		Color:  "purple",
	}

	out := []StatCard{followers}
	if len(static) > 0 {
		out = append(out, static[0])
		static = static[1:]
	}
	out = append(out, engagement)
	return append(out, static...)
}

// OverviewKPIs fills the department placeholder of each footer.
func OverviewKPIs(cards []StatCard, department string) []StatCard {
	label := Label(DepartmentFilter, normalize(Departments, department))
	out := make([]StatCard, len(cards))
	for i, c := range cards {
		c.Footer = strings.ReplaceAll(c.Footer, DepartmentPlaceholder, label)
		out[i] = c
	}
	return out
}

// TotalRevenue sums the series for department, or every department for All.
func TotalRevenue(series []RevenuePoint, department string) int64 {
	var total int64
	for _, p := range series {
		total += p.For(department)
	}
	return total
}

// MaxRevenue is the largest single-department value in the series, used to
// scale the chart bars. Restricting to a department scales to that department.
func MaxRevenue(series []RevenuePoint, department string) int64 {
	department = normalize(Departments, department)
	var max int64
	for _, p := range series {
		for _, d := range Departments {
			if department != All && department != d.Key {
				continue
			}
			if v := p.For(d.Key); v > max {
				max = v
			}
		}
	}
	return max
}

// BarPercent scales v against max to a 0..100 bar height.
func BarPercent(v, max int64) int {
	if max <= 0 || v <= 0 {
		return 0
	}
	return int(math.Round(float64(v) / float64(max) * 100))
}
