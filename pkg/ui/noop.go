package ui

// NopWidget is a Widget that does nothing. It stands in for a real toolkit
// surface in tests and in headless hosts.
type NopWidget struct {
	ShowCalls     int
	RaiseCalls    int
	ActivateCalls int
}

func (w *NopWidget) Show()     { w.ShowCalls++ }
func (w *NopWidget) Raise()    { w.RaiseCalls++ }
func (w *NopWidget) Activate() { w.ActivateCalls++ }

// SimpleAction is an in-memory Action implementation. Hosts without a real
// toolkit (and the SDK's own tests) return it from their UI manager.
type SimpleAction struct {
	Title   string
	ToolTip string
	Icon    string

	fn func()
}

func NewSimpleAction(title string) *SimpleAction {
	return &SimpleAction{Title: title}
}

func (a *SimpleAction) SetToolTip(text string) { a.ToolTip = text }
func (a *SimpleAction) SetIcon(path string)    { a.Icon = path }
func (a *SimpleAction) OnTrigger(fn func())    { a.fn = fn }

func (a *SimpleAction) Trigger() {
	if a.fn != nil {
		a.fn()
	}
}
