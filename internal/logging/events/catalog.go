package events

import "github.com/atomicstack/drilldown/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Load(path string, records int) {
	logging.Trace("catalog.load", map[string]interface{}{"path": path, "records": records})
}

func (CatalogTracer) Create(id, kind, parent string) {
	logging.Trace("catalog.create", map[string]interface{}{"id": id, "kind": kind, "parent": parent})
}

func (CatalogTracer) Delete(id string, removed int) {
	logging.Trace("catalog.delete", map[string]interface{}{"id": id, "removed": removed})
}

func (CatalogTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.error", map[string]interface{}{"op": op, "error": err.Error()})
}
