package roggle

// Printer is the formatting Strategy: it turns one event into the ordered
// display lines handed to the Output. Render must be a pure function of
// the event and the printer's construction-time configuration.
type Printer interface {
	Render(e *Event) []string
}

// PrinterFunc adapter.
type PrinterFunc func(*Event) []string

func (f PrinterFunc) Render(e *Event) []string { return f(e) }
