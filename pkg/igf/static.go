package igf

// StaticView is the simplest view kind: a background fill plus a fixed
// item list. It carries no state and no pagination.
type StaticView struct {
	baseView
}

// NewStaticView creates an unbuilt static view for one viewer.
func NewStaticView(d *Dispatcher, viewer Viewer) *StaticView {
	return &StaticView{baseView: newBaseView(d, viewer)}
}

// SetTitle sets the surface title.
func (v *StaticView) SetTitle(title string) *StaticView {
	v.setTitle(title)
	return v
}

// SetSize sets the grid size. The size must be a positive multiple of 9.
func (v *StaticView) SetSize(n int) error {
	return v.setSize("set_size", n)
}

// SetBackground sets the fill applied to every slot before items are
// placed. It has no visible effect until the next render.
func (v *StaticView) SetBackground(kind VisualKind) *StaticView {
	v.setBackground(kind)
	return v
}

// SetItems replaces the view's item list.
func (v *StaticView) SetItems(items []*Item) *StaticView {
	v.setItems(items)
	return v
}

// AddItems appends items to the view's item list.
func (v *StaticView) AddItems(items ...*Item) *StaticView {
	v.addItems(items...)
	return v
}

// OnOpen registers a callback invoked when the surface is shown.
func (v *StaticView) OnOpen(f func(Viewer)) *StaticView {
	v.setOnOpen(f)
	return v
}

// OnClose registers a callback invoked when the surface is closed.
func (v *StaticView) OnClose(f func(Viewer, CloseReason)) *StaticView {
	v.setOnClose(f)
	return v
}

// Build allocates the surface and performs the first render.
func (v *StaticView) Build() error {
	if err := v.create(v); err != nil {
		return err
	}
	return v.Render()
}

// Render redraws the surface from the current configuration.
func (v *StaticView) Render() error {
	if err := v.requireBuilt("render"); err != nil {
		return err
	}
	v.paint(v.baseItems)
	return nil
}

// AllItems returns the items eligible for click routing.
func (v *StaticView) AllItems() []*Item {
	return v.baseItems
}

// Resolve returns the item occupying a slot, or nil.
func (v *StaticView) Resolve(slot int) *Item {
	return resolveIn(v.AllItems(), slot)
}
