package events

import "github.com/atomicstack/course-sidebar/internal/logging"

type AppTracer struct{}

type CatalogTracer struct{}

var (
	App     = AppTracer{}
	Catalog = CatalogTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(selected string) {
	logging.Trace("app.stop", map[string]interface{}{"selected": selected})
}

func (CatalogTracer) Load(source string, nodes int) {
	logging.Trace("catalog.load", map[string]interface{}{"source": source, "nodes": nodes})
}

func (CatalogTracer) Invalid(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.invalid", map[string]interface{}{"source": source, "error": err.Error()})
}
