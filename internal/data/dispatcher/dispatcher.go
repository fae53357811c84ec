package dispatcher

import (
	"github.com/atomicstack/drilldown/internal/backend"
	"github.com/atomicstack/drilldown/internal/catalog"
	"github.com/atomicstack/drilldown/internal/logging/events"
	"github.com/atomicstack/drilldown/internal/state"
)

type Result struct {
	Reloading bool
	Updated   bool
	Catalog   *catalog.Catalog
	Err       error
}

type Dispatcher struct {
	stores []state.RecordStore
}

// New routes catalog events into stores; stores[i] receives level i.
func New(stores []state.RecordStore) *Dispatcher {
	return &Dispatcher{stores: stores}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindReloading:
		for _, s := range d.stores {
			s.BeginLoad()
		}
		res.Reloading = true
	case backend.KindCatalog:
		if evt.Err != nil {
			events.Catalog.Error("load", evt.Err)
			// release anything waiting on the failed load with the old records
			for _, s := range d.stores {
				if s.IsLoading() {
					s.Complete(records(s.Items()))
				}
			}
			res.Err = evt.Err
			return res
		}
		if snapshot, ok := evt.Data.(backend.Snapshot); ok && snapshot.Catalog != nil {
			for _, s := range d.stores {
				s.Complete(snapshot.Catalog.AtLevel(s.Level()))
			}
			events.Catalog.Load(snapshot.Path, len(snapshot.Catalog.Records))
			res.Updated = true
			res.Catalog = snapshot.Catalog
		}
	}
	return res
}

func records(items []state.Item) []catalog.Record {
	out := make([]catalog.Record, len(items))
	for i, item := range items {
		out[i] = item.Record
	}
	return out
}
