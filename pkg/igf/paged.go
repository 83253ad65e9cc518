package igf

import "github.com/ririf4/IGF/pkg/igf/constants"

// pager holds the pagination state shared by PagedView and
// StatefulPagedView: the slot positions the page is projected onto, the
// flat item collection, the current page, and the optional placeholder
// and navigation items.
type pager struct {
	slots       []int
	perPage     int
	items       []*Item
	page        int
	placeholder *Item
	prev, next  *Item
}

func newPager() pager {
	return pager{perPage: constants.DefaultItemsPerPage}
}

// totalPages is recomputed from the collection on every call and is
// always at least 1.
func (p *pager) totalPages() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + p.perPage - 1) / p.perPage
}

// clampPage pulls the current page back into range. Called at render
// time; replacing the item collection directly does not clamp (the page
// may briefly read out of range until the next render or page switch).
func (p *pager) clampPage() {
	p.page = p.clampedPage()
}

// clampedPage returns the page a render pass would show without
// mutating the stored page.
func (p *pager) clampedPage() int {
	page := p.page
	if last := p.totalPages() - 1; page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// setPage clamps the requested page and reports whether it differs from
// the current one.
func (p *pager) setPage(n int) bool {
	last := p.totalPages() - 1
	if n < 0 {
		n = 0
	}
	if n > last {
		n = last
	}
	if n == p.page {
		return false
	}
	p.page = n
	return true
}

// window returns the current page's items repositioned onto the slot
// positions. Items beyond the available slot positions are dropped.
func (p *pager) window() []*Item {
	start := p.clampedPage() * p.perPage
	if start >= len(p.items) {
		return nil
	}
	end := start + p.perPage
	if end > len(p.items) {
		end = len(p.items)
	}
	placed := make([]*Item, 0, end-start)
	for i, it := range p.items[start:end] {
		if i >= len(p.slots) {
			break
		}
		if it == nil {
			continue
		}
		placed = append(placed, it.WithPosition(p.slots[i]))
	}
	return placed
}

// placeholderLayer returns the empty-state placeholder, or nil when the
// collection is non-empty or no placeholder is configured.
func (p *pager) placeholderLayer() []*Item {
	if len(p.items) > 0 || p.placeholder == nil {
		return nil
	}
	return []*Item{p.placeholder}
}

// navLayer returns whichever navigation items are visible on the current
// page. Items declared at AutoPosition land on the bottom row corners.
func (p *pager) navLayer(gridSize int) []*Item {
	page := p.clampedPage()
	var nav []*Item
	if page > 0 && p.prev != nil {
		nav = append(nav, placeNav(p.prev, gridSize-constants.RowWidth))
	}
	if page < p.totalPages()-1 && p.next != nil {
		nav = append(nav, placeNav(p.next, gridSize-1))
	}
	return nav
}

func placeNav(it *Item, auto int) *Item {
	if it.Position() >= 0 {
		return it
	}
	return it.WithPosition(auto)
}

// PagedView paginates one flat item collection over a set of slot
// positions, with navigation items and an empty-state placeholder.
type PagedView struct {
	baseView
	pager
}

// NewPagedView creates an unbuilt paged view for one viewer. The view
// starts with localized navigation items on the bottom row corners;
// replace them with SetNavigation.
func NewPagedView(d *Dispatcher, viewer Viewer) *PagedView {
	v := &PagedView{
		baseView: newBaseView(d, viewer),
		pager:    newPager(),
	}
	v.prev = d.defaultPrevItem().OnClick(func(Viewer, View) { _ = v.PrevPage() })
	v.next = d.defaultNextItem().OnClick(func(Viewer, View) { _ = v.NextPage() })
	return v
}

// SetTitle sets the surface title.
func (v *PagedView) SetTitle(title string) *PagedView {
	v.setTitle(title)
	return v
}

// SetSize sets the grid size. The size must be a positive multiple of 9.
func (v *PagedView) SetSize(n int) error {
	return v.setSize("set_size", n)
}

// SetBackground sets the fill applied to every slot before items.
func (v *PagedView) SetBackground(kind VisualKind) *PagedView {
	v.setBackground(kind)
	return v
}

// SetItems replaces the view's fixed base items (rendered below the
// paged layer).
func (v *PagedView) SetItems(items []*Item) *PagedView {
	v.setItems(items)
	return v
}

// AddItems appends fixed base items.
func (v *PagedView) AddItems(items ...*Item) *PagedView {
	v.addItems(items...)
	return v
}

// SetSlots sets the slot positions paged items are projected onto, in
// order. A position that repeats follows the general overlay rule: the
// later item wins the slot.
func (v *PagedView) SetSlots(positions ...int) *PagedView {
	v.slots = positions
	return v
}

// SetItemsPerPage overrides the default page size of 9.
func (v *PagedView) SetItemsPerPage(n int) error {
	if n <= 0 {
		return &ConfigError{Op: "set_items_per_page", Err: ErrItemsPerPageInvalid}
	}
	v.perPage = n
	return nil
}

// SetPageItems replaces the paged item collection. The page count is
// derived from the new collection; the current page is not reset and is
// clamped lazily on the next render or page switch.
func (v *PagedView) SetPageItems(items []*Item) *PagedView {
	v.items = items
	return v
}

// AddPageItems appends to the paged item collection.
func (v *PagedView) AddPageItems(items ...*Item) *PagedView {
	v.items = append(v.items, items...)
	return v
}

// SetPlaceholder sets the item shown when the collection is empty.
func (v *PagedView) SetPlaceholder(it *Item) *PagedView {
	v.placeholder = it
	return v
}

// SetNavigation replaces the previous/next navigation items. Their click
// handlers are bound to PrevPage and NextPage. Either may be nil to hide
// that direction entirely.
func (v *PagedView) SetNavigation(prev, next *Item) *PagedView {
	if prev != nil {
		prev = prev.OnClick(func(Viewer, View) { _ = v.PrevPage() })
	}
	if next != nil {
		next = next.OnClick(func(Viewer, View) { _ = v.NextPage() })
	}
	v.prev, v.next = prev, next
	return v
}

// OnOpen registers a callback invoked when the surface is shown.
func (v *PagedView) OnOpen(f func(Viewer)) *PagedView {
	v.setOnOpen(f)
	return v
}

// OnClose registers a callback invoked when the surface is closed.
func (v *PagedView) OnClose(f func(Viewer, CloseReason)) *PagedView {
	v.setOnClose(f)
	return v
}

// Build allocates the surface and performs the first render.
func (v *PagedView) Build() error {
	if err := v.create(v); err != nil {
		return err
	}
	return v.Render()
}

// Render redraws the surface: background, base items, then either the
// placeholder (empty collection) or the current page window, then the
// visible navigation items.
func (v *PagedView) Render() error {
	if err := v.requireBuilt("render"); err != nil {
		return err
	}
	v.clampPage()
	if len(v.items) == 0 {
		v.paint(v.baseItems, v.placeholderLayer())
		return nil
	}
	v.paint(v.baseItems, v.window(), v.navLayer(v.size))
	return nil
}

// Page returns the current 0-based page.
func (v *PagedView) Page() int { return v.page }

// TotalPages returns the derived page count, always at least 1.
func (v *PagedView) TotalPages() int { return v.totalPages() }

// SwitchPage clamps the requested page into range and re-renders only if
// the clamped value differs from the current page.
func (v *PagedView) SwitchPage(page int) error {
	if !v.setPage(page) {
		return nil
	}
	return v.Render()
}

// NextPage advances one page, clamped to the last page.
func (v *PagedView) NextPage() error { return v.SwitchPage(v.page + 1) }

// PrevPage goes back one page, clamped to page 0.
func (v *PagedView) PrevPage() error { return v.SwitchPage(v.page - 1) }

// AllItems returns the items eligible for click routing, in ascending
// render precedence order.
func (v *PagedView) AllItems() []*Item {
	all := make([]*Item, 0, len(v.baseItems)+v.perPage+3)
	all = append(all, v.baseItems...)
	if len(v.items) == 0 {
		all = append(all, v.placeholderLayer()...)
		return all
	}
	all = append(all, v.window()...)
	all = append(all, v.navLayer(v.size)...)
	return all
}

// Resolve returns the item occupying a slot, or nil.
func (v *PagedView) Resolve(slot int) *Item {
	return resolveIn(v.AllItems(), slot)
}
