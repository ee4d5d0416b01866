package roggle

import "github.com/trickstertwo/xclock"

// Config for constructing a Logger (Factory data structure). Zero fields
// are defaulted by Build: a PrettyPrinter, a console sink and a
// LevelFilter at MinLevel.
type Config struct {
	Filter   Filter
	Printer  Printer
	Output   Output
	MinLevel Level
	Clock    xclock.Clock // optional; defaults to the process clock
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

// NewBuilder starts from the process-wide default minimum severity.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: DefaultLevel()}}
}

func (b *Builder) WithFilter(f Filter) *Builder {
	b.cfg.Filter = f
	return b
}

func (b *Builder) WithPrinter(p Printer) *Builder {
	b.cfg.Printer = p
	return b
}

func (b *Builder) WithOutput(o Output) *Builder {
	b.cfg.Output = o
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// Build constructs the Logger (Factory + Builder), filling defaults for
// any component left unset.
func (b *Builder) Build() (*Logger, error) {
	cfg := b.cfg
	if cfg.Printer == nil {
		cfg.Printer = NewPrettyPrinter()
	}
	if cfg.Output == nil {
		cfg.Output = NewConsoleOutput(nil)
	}
	if cfg.Filter == nil {
		cfg.Filter = LevelFilter{Level: cfg.MinLevel}
	}
	return newLogger(cfg), nil
}
