package igf

// StatefulView adds a finite state dimension to a static layout. The
// caller supplies the closed state set at construction; the framework
// needs only equality and enumeration over it, never reflection. Each
// state carries its own fixed item set rendered above the base items.
type StatefulView[S comparable] struct {
	baseView

	states   []S
	current  S
	hasState bool
	fixed    map[S][]*Item
}

// NewStatefulView creates an unbuilt stateful view for one viewer over
// the given closed state set. The view starts with no current state.
func NewStatefulView[S comparable](d *Dispatcher, viewer Viewer, states []S) *StatefulView[S] {
	return &StatefulView[S]{
		baseView: newBaseView(d, viewer),
		states:   states,
		fixed:    make(map[S][]*Item),
	}
}

// SetTitle sets the surface title.
func (v *StatefulView[S]) SetTitle(title string) *StatefulView[S] {
	v.setTitle(title)
	return v
}

// SetSize sets the grid size. The size must be a positive multiple of 9.
func (v *StatefulView[S]) SetSize(n int) error {
	return v.setSize("set_size", n)
}

// SetBackground sets the fill applied to every slot before items.
func (v *StatefulView[S]) SetBackground(kind VisualKind) *StatefulView[S] {
	v.setBackground(kind)
	return v
}

// SetItems replaces the base items rendered in every state.
func (v *StatefulView[S]) SetItems(items []*Item) *StatefulView[S] {
	v.setItems(items)
	return v
}

// AddItems appends base items rendered in every state.
func (v *StatefulView[S]) AddItems(items ...*Item) *StatefulView[S] {
	v.addItems(items...)
	return v
}

// SetStateItems sets the fixed items rendered while the view is in the
// given state. A state with no mapping renders base items only.
func (v *StatefulView[S]) SetStateItems(state S, items ...*Item) *StatefulView[S] {
	v.fixed[state] = items
	return v
}

// OnOpen registers a callback invoked when the surface is shown.
func (v *StatefulView[S]) OnOpen(f func(Viewer)) *StatefulView[S] {
	v.setOnOpen(f)
	return v
}

// OnClose registers a callback invoked when the surface is closed.
func (v *StatefulView[S]) OnClose(f func(Viewer, CloseReason)) *StatefulView[S] {
	v.setOnClose(f)
	return v
}

// States returns the closed state set the view was constructed with.
func (v *StatefulView[S]) States() []S { return v.states }

// State returns the current state, if one has been set.
func (v *StatefulView[S]) State() (S, bool) { return v.current, v.hasState }

func (v *StatefulView[S]) member(state S) bool {
	for _, s := range v.states {
		if s == state {
			return true
		}
	}
	return false
}

// SetState sets the current state without re-rendering.
func (v *StatefulView[S]) SetState(state S) error {
	if !v.member(state) {
		return &ConfigError{Op: "set_state", Err: ErrUnknownState}
	}
	v.current = state
	v.hasState = true
	return nil
}

// SwitchState sets the current state and re-renders the state layer.
// Switching to the already-current state is a no-op.
func (v *StatefulView[S]) SwitchState(state S) error {
	if !v.member(state) {
		return &ConfigError{Op: "switch_state", Err: ErrUnknownState}
	}
	if v.hasState && v.current == state {
		return nil
	}
	v.current = state
	v.hasState = true
	return v.Render()
}

// Build allocates the surface and performs the first render.
func (v *StatefulView[S]) Build() error {
	if err := v.create(v); err != nil {
		return err
	}
	return v.Render()
}

// Render redraws the surface: background, base items, then the current
// state's fixed items.
func (v *StatefulView[S]) Render() error {
	if err := v.requireBuilt("render"); err != nil {
		return err
	}
	v.paint(v.baseItems, v.stateLayer())
	return nil
}

func (v *StatefulView[S]) stateLayer() []*Item {
	if !v.hasState {
		return nil
	}
	return v.fixed[v.current]
}

// AllItems returns the items eligible for click routing, in ascending
// render precedence order.
func (v *StatefulView[S]) AllItems() []*Item {
	all := make([]*Item, 0, len(v.baseItems)+len(v.stateLayer()))
	all = append(all, v.baseItems...)
	all = append(all, v.stateLayer()...)
	return all
}

// Resolve returns the item occupying a slot, or nil.
func (v *StatefulView[S]) Resolve(slot int) *Item {
	return resolveIn(v.AllItems(), slot)
}
