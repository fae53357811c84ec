package events

import "github.com/atomicstack/drilldown/internal/logging"

type BookmarkTracer struct{}

var Bookmark = BookmarkTracer{}

func (BookmarkTracer) Set(token string, scoped bool) {
	logging.Trace("bookmark.set", map[string]interface{}{"token": token, "scoped": scoped})
}

func (BookmarkTracer) Navigate(token string) {
	logging.Trace("bookmark.navigate", map[string]interface{}{"token": token})
}

func (BookmarkTracer) Defer(token string, level int) {
	logging.Trace("bookmark.defer", map[string]interface{}{"token": token, "level": level})
}

func (BookmarkTracer) Supersede(level int) {
	logging.Trace("bookmark.supersede", map[string]interface{}{"level": level})
}

func (BookmarkTracer) Abandon(level int, recordID, reason string) {
	logging.Trace("bookmark.abandon", map[string]interface{}{"level": level, "record": recordID, "reason": reason})
}

func (BookmarkTracer) DecodeError(token string, err error) {
	logging.Trace("bookmark.decode-error", map[string]interface{}{"token": token, "error": err.Error()})
}
