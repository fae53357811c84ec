package drilldown

import (
	"sort"

	"github.com/atomicstack/drilldown/internal/logging/events"
)

// ReduceWidths shrinks button widths so they sum to at most target. The widest
// button is cut first, down to the next widest, until a single cut is enough;
// once the two widest are tied every button gets an even share. The result is
// in the same order as widths. Widths that already fit are returned unchanged.
func ReduceWidths(widths []int, target int) []int {
	out := append([]int(nil), widths...)
	n := len(out)
	if n == 0 {
		return out
	}
	if target < 0 {
		target = 0
	}
	if sum(out) <= target {
		return out
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for pass := 0; pass < n; pass++ {
		sort.SliceStable(order, func(a, b int) bool { return out[order[a]] > out[order[b]] })
		if n == 1 || out[order[0]] <= out[order[1]] {
			break
		}
		widest, next := order[0], order[1]
		total := sum(out)
		if total-(out[widest]-out[next]) <= target {
			out[widest] = target - (total - out[widest])
			events.Drilldown.Reduce(widths, target, out)
			return out
		}
		out[widest] = out[next]
	}

	share := target / n
	for i := range out {
		out[i] = share
	}
	events.Drilldown.Reduce(widths, target, out)
	return out
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
