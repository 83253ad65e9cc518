package igf

// StatefulPagedView composes the state dimension with pagination.
// Pagination is gated per state: states outside the enabled set render
// only base and per-state fixed items, never paged items or navigation,
// whatever the page collection holds.
//
// Page content per state comes from either a static mapping populated
// once via SetStateMappings, or a dynamic provider re-invoked on every
// Build and SwitchState. When both are configured the provider wins.
type StatefulPagedView[S comparable] struct {
	baseView
	pager

	states   []S
	current  S
	hasState bool
	fixed    map[S][]*Item
	enabled  map[S]bool
	mappings map[S][]*Item
	provider func(S) []*Item
}

// NewStatefulPagedView creates an unbuilt stateful paged view for one
// viewer over the given closed state set. The view starts with no
// current state, no pagination-enabled states, and localized navigation
// items on the bottom row corners.
func NewStatefulPagedView[S comparable](d *Dispatcher, viewer Viewer, states []S) *StatefulPagedView[S] {
	v := &StatefulPagedView[S]{
		baseView: newBaseView(d, viewer),
		pager:    newPager(),
		states:   states,
		fixed:    make(map[S][]*Item),
		enabled:  make(map[S]bool),
		mappings: make(map[S][]*Item),
	}
	v.prev = d.defaultPrevItem().OnClick(func(Viewer, View) { _ = v.PrevPage() })
	v.next = d.defaultNextItem().OnClick(func(Viewer, View) { _ = v.NextPage() })
	return v
}

// SetTitle sets the surface title.
func (v *StatefulPagedView[S]) SetTitle(title string) *StatefulPagedView[S] {
	v.setTitle(title)
	return v
}

// SetSize sets the grid size. The size must be a positive multiple of 9.
func (v *StatefulPagedView[S]) SetSize(n int) error {
	return v.setSize("set_size", n)
}

// SetBackground sets the fill applied to every slot before items.
func (v *StatefulPagedView[S]) SetBackground(kind VisualKind) *StatefulPagedView[S] {
	v.setBackground(kind)
	return v
}

// SetItems replaces the base items rendered in every state.
func (v *StatefulPagedView[S]) SetItems(items []*Item) *StatefulPagedView[S] {
	v.setItems(items)
	return v
}

// AddItems appends base items rendered in every state.
func (v *StatefulPagedView[S]) AddItems(items ...*Item) *StatefulPagedView[S] {
	v.addItems(items...)
	return v
}

// SetStateItems sets the fixed items rendered while the view is in the
// given state.
func (v *StatefulPagedView[S]) SetStateItems(state S, items ...*Item) *StatefulPagedView[S] {
	v.fixed[state] = items
	return v
}

// EnablePagination marks states whose paged layer renders. All other
// states show only base and fixed items.
func (v *StatefulPagedView[S]) EnablePagination(states ...S) *StatefulPagedView[S] {
	for _, s := range states {
		v.enabled[s] = true
	}
	return v
}

// SetStateMappings populates the static per-state page collections.
// Entering a mapped state loads its collection; an unmapped state pages
// over an empty collection.
func (v *StatefulPagedView[S]) SetStateMappings(mappings map[S][]*Item) *StatefulPagedView[S] {
	v.mappings = mappings
	return v
}

// SetProvider sets the dynamic page-content producer, re-invoked for the
// target state on every Build and SwitchState.
func (v *StatefulPagedView[S]) SetProvider(provider func(S) []*Item) *StatefulPagedView[S] {
	v.provider = provider
	return v
}

// SetSlots sets the slot positions paged items are projected onto.
func (v *StatefulPagedView[S]) SetSlots(positions ...int) *StatefulPagedView[S] {
	v.slots = positions
	return v
}

// SetItemsPerPage overrides the default page size of 9.
func (v *StatefulPagedView[S]) SetItemsPerPage(n int) error {
	if n <= 0 {
		return &ConfigError{Op: "set_items_per_page", Err: ErrItemsPerPageInvalid}
	}
	v.perPage = n
	return nil
}

// SetPageItems replaces the paged collection directly, bypassing the
// mapping and provider. The current page is clamped lazily on the next
// render or page switch.
func (v *StatefulPagedView[S]) SetPageItems(items []*Item) *StatefulPagedView[S] {
	v.items = items
	return v
}

// SetPlaceholder sets the item shown when the paged collection is empty
// in a pagination-enabled state.
func (v *StatefulPagedView[S]) SetPlaceholder(it *Item) *StatefulPagedView[S] {
	v.placeholder = it
	return v
}

// SetNavigation replaces the previous/next navigation items, binding
// their click handlers to PrevPage and NextPage.
func (v *StatefulPagedView[S]) SetNavigation(prev, next *Item) *StatefulPagedView[S] {
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
func (v *StatefulPagedView[S]) OnOpen(f func(Viewer)) *StatefulPagedView[S] {
	v.setOnOpen(f)
	return v
}

// OnClose registers a callback invoked when the surface is closed.
func (v *StatefulPagedView[S]) OnClose(f func(Viewer, CloseReason)) *StatefulPagedView[S] {
	v.setOnClose(f)
	return v
}

// States returns the closed state set the view was constructed with.
func (v *StatefulPagedView[S]) States() []S { return v.states }

// State returns the current state, if one has been set.
func (v *StatefulPagedView[S]) State() (S, bool) { return v.current, v.hasState }

func (v *StatefulPagedView[S]) member(state S) bool {
	for _, s := range v.states {
		if s == state {
			return true
		}
	}
	return false
}

func (v *StatefulPagedView[S]) paginationEnabled() bool {
	return v.hasState && v.enabled[v.current]
}

// SetState sets the current state without re-rendering or reloading
// page content.
func (v *StatefulPagedView[S]) SetState(state S) error {
	if !v.member(state) {
		return &ConfigError{Op: "set_state", Err: ErrUnknownState}
	}
	v.current = state
	v.hasState = true
	return nil
}

// SwitchState moves the view to the given state and re-renders. Entering
// a different state resets the page to 0; re-entering the current state
// keeps the page. Either way the provider, if set, is re-invoked so
// dynamic content refreshes.
func (v *StatefulPagedView[S]) SwitchState(state S) error {
	if !v.member(state) {
		return &ConfigError{Op: "switch_state", Err: ErrUnknownState}
	}
	if !v.hasState || v.current != state {
		v.page = 0
	}
	v.current = state
	v.hasState = true
	v.reloadPageItems()
	return v.Render()
}

// reloadPageItems refreshes the paged collection for the current state
// from the provider or, failing that, the static mapping.
func (v *StatefulPagedView[S]) reloadPageItems() {
	if !v.hasState {
		return
	}
	if v.provider != nil {
		v.items = v.provider(v.current)
		return
	}
	if v.mappings != nil {
		v.items = v.mappings[v.current]
	}
}

// Build allocates the surface, loads the current state's page content,
// and performs the first render.
func (v *StatefulPagedView[S]) Build() error {
	if err := v.create(v); err != nil {
		return err
	}
	v.reloadPageItems()
	return v.Render()
}

// Render redraws the surface. Precedence, highest last: background,
// base items, per-state fixed items, then for pagination-enabled states
// the placeholder or page window and the visible navigation items.
func (v *StatefulPagedView[S]) Render() error {
	if err := v.requireBuilt("render"); err != nil {
		return err
	}
	v.clampPage()
	if !v.paginationEnabled() {
		v.paint(v.baseItems, v.stateLayer())
		return nil
	}
	if len(v.items) == 0 {
		v.paint(v.baseItems, v.stateLayer(), v.placeholderLayer())
		return nil
	}
	v.paint(v.baseItems, v.stateLayer(), v.window(), v.navLayer(v.size))
	return nil
}

func (v *StatefulPagedView[S]) stateLayer() []*Item {
	if !v.hasState {
		return nil
	}
	return v.fixed[v.current]
}

// Page returns the current 0-based page.
func (v *StatefulPagedView[S]) Page() int { return v.page }

// TotalPages returns the derived page count, always at least 1.
func (v *StatefulPagedView[S]) TotalPages() int { return v.totalPages() }

// SwitchPage clamps the requested page into range and re-renders only if
// the clamped value differs from the current page.
func (v *StatefulPagedView[S]) SwitchPage(page int) error {
	if !v.setPage(page) {
		return nil
	}
	return v.Render()
}

// NextPage advances one page, clamped to the last page.
func (v *StatefulPagedView[S]) NextPage() error { return v.SwitchPage(v.page + 1) }

// PrevPage goes back one page, clamped to page 0.
func (v *StatefulPagedView[S]) PrevPage() error { return v.SwitchPage(v.page - 1) }

// AllItems returns the items eligible for click routing: base items,
// current-state fixed items, and, only in pagination-enabled states, the
// placeholder or page window plus visible navigation items.
func (v *StatefulPagedView[S]) AllItems() []*Item {
	all := make([]*Item, 0, len(v.baseItems)+len(v.stateLayer())+v.perPage+3)
	all = append(all, v.baseItems...)
	all = append(all, v.stateLayer()...)
	if !v.paginationEnabled() {
		return all
	}
	if len(v.items) == 0 {
		all = append(all, v.placeholderLayer()...)
		return all
	}
	all = append(all, v.window()...)
	all = append(all, v.navLayer(v.size)...)
	return all
}

// Resolve returns the item occupying a slot, or nil.
func (v *StatefulPagedView[S]) Resolve(slot int) *Item {
	return resolveIn(v.AllItems(), slot)
}
