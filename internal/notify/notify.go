// Package notify holds process-wide dialog and snackbar state. Both
// containers follow the same discipline: opening sets the open flag and
// all content fields in one step, closing resets to the defaults.
package notify

import "sync"

const DefaultScroll = "body"

type Dialog struct {
	Open               bool
	Title              string
	Content            string
	Scroll             string
	CustomButtonText   string
	CustomButtonAction func()
}

type Snackbar struct {
	Open             bool
	Message          string
	Severity         string
	Position         string
	AutoHideDuration int
}

type DialogPayload struct {
	Title              string
	Content            string
	Scroll             string
	CustomButtonText   string
	CustomButtonAction func()
}

type SnackbarPayload struct {
	Message          string
	Severity         string
	Position         string
	AutoHideDuration int
}

type Center struct {
	mu       sync.Mutex
	dialog   Dialog
	snackbar Snackbar
}

func NewCenter() *Center {
	return &Center{
		dialog: Dialog{Scroll: DefaultScroll},
	}
}

func (c *Center) OpenDialog(p DialogPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()

	scroll := p.Scroll
	if scroll == "" {
		scroll = DefaultScroll
	}
	c.dialog = Dialog{
		Open:               true,
		Title:              p.Title,
		Content:            p.Content,
		Scroll:             scroll,
		CustomButtonText:   p.CustomButtonText,
		CustomButtonAction: p.CustomButtonAction,
	}
}

func (c *Center) CloseDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialog = Dialog{Scroll: DefaultScroll}
}

func (c *Center) Dialog() Dialog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialog
}

// OpenSnackbar keeps the previous position when the payload leaves it
// empty; every other field is taken from the payload.
func (c *Center) OpenSnackbar(p SnackbarPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()

	position := p.Position
	if position == "" {
		position = c.snackbar.Position
	}
	c.snackbar = Snackbar{
		Open:             true,
		Message:          p.Message,
		Severity:         p.Severity,
		Position:         position,
		AutoHideDuration: p.AutoHideDuration,
	}
}

func (c *Center) CloseSnackbar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	position := c.snackbar.Position
	c.snackbar = Snackbar{Position: position}
}

func (c *Center) Snackbar() Snackbar {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snackbar
}
