package events

import "github.com/atomicstack/course-sidebar/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type TreeTracer struct{}

type SelectionTracer struct{}

type ContentTracer struct{}

var (
	UI        = UITracer{}
	Filter    = FilterTracer{}
	Tree      = TreeTracer{}
	Selection = SelectionTracer{}
	Content   = ContentTracer{}
)

func (UITracer) Cursor(row int, id string) {
	logging.Trace("sidebar.cursor", map[string]interface{}{"row": row, "id": id})
}

func (UITracer) Click(id string, depth int, source string) {
	logging.Trace("sidebar.click", map[string]interface{}{"id": id, "depth": depth, "source": source})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (TreeTracer) Expand(id string, depth int) {
	logging.Trace("tree.expand", map[string]interface{}{"id": id, "depth": depth})
}

func (TreeTracer) Collapse(id string, depth int) {
	logging.Trace("tree.collapse", map[string]interface{}{"id": id, "depth": depth})
}

func (SelectionTracer) Select(id, title string) {
	logging.Trace("selection.select", map[string]interface{}{"id": id, "title": title})
}

func (ContentTracer) Show(kind, id, locator string) {
	logging.Trace("content.show", map[string]interface{}{"kind": kind, "id": id, "locator": locator})
}

func (ContentTracer) RenderError(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("content.render-error", map[string]interface{}{"id": id, "error": err.Error()})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string, match string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter, "match": match})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}
