package events

import "github.com/atomicstack/drilldown/internal/logging"

type DrilldownTracer struct{}

var Drilldown = DrilldownTracer{}

func (DrilldownTracer) Pad(from, to int) {
	logging.Trace("drilldown.pad", map[string]interface{}{"from": from, "to": to})
}

func (DrilldownTracer) ShowChild(index int, animate bool) {
	logging.Trace("drilldown.show-child", map[string]interface{}{"index": index, "animate": animate})
}

func (DrilldownTracer) ShowCreateWizard(index int, animate, replaced bool) {
	logging.Trace("drilldown.show-create", map[string]interface{}{"index": index, "animate": animate, "replaced": replaced})
}

func (DrilldownTracer) Slide(from, to int, animate bool, position int) {
	logging.Trace("drilldown.slide", map[string]interface{}{
		"from":     from,
		"to":       to,
		"animate":  animate,
		"position": position,
	})
}

func (DrilldownTracer) Settle(index int, stale bool) {
	logging.Trace("drilldown.settle", map[string]interface{}{"index": index, "stale": stale})
}

func (DrilldownTracer) Breadcrumb(index int, labels []string) {
	logging.Trace("drilldown.breadcrumb", map[string]interface{}{"index": index, "labels": labels})
}

func (DrilldownTracer) Reduce(widths []int, target int, result []int) {
	logging.Trace("drilldown.reduce", map[string]interface{}{"widths": widths, "target": target, "result": result})
}

func (DrilldownTracer) Delete(recordID string) {
	logging.Trace("drilldown.delete", map[string]interface{}{"record": recordID})
}
