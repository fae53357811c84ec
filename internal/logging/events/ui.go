package events

import "github.com/atomicstack/drilldown/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Select(level int, recordID, label string) {
	logging.Trace("ui.select", map[string]interface{}{
		"level":  level,
		"record": recordID,
		"label":  label,
	})
}

func (UITracer) Cursor(level, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"level": level, "cursor": cursor})
}

func (UITracer) Confirm(title, message string, accepted bool) {
	logging.Trace("ui.confirm", map[string]interface{}{"title": title, "message": message, "accepted": accepted})
}

func (UITracer) DetailTab(name string) {
	logging.Trace("ui.detail-tab", map[string]interface{}{"tab": name})
}

func (UITracer) Resize(width, height int, suspended bool) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height, "suspended": suspended})
}

func (UITracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.error", map[string]interface{}{"error": err.Error()})
}

func (FilterTracer) Cleared(level int) {
	logging.Trace("filter.clear", map[string]interface{}{"level": level})
}

func (FilterTracer) WordBackspace(level int, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"level": level, "filter": filter})
}

func (FilterTracer) Cursor(level, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"level": level, "cursor": pos})
}

func (FilterTracer) Append(level int, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": level, "filter": filter})
}

func (FilterTracer) Backspace(level int, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": level, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
