package document

// Path is one continuous stroke's command list. It is open while being
// drawn and becomes a permanent child of its document once finished.
//
// The first command is always MoveTo. A path holding only a MoveTo has
// produced no visible ink and is discarded rather than persisted.
type Path struct {
	commands []Command
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		commands: make([]Command, 0, 16),
	}
}

// Commands returns the path's command list.
func (p *Path) Commands() []Command {
	return p.commands
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.commands)
}

// Append adds a command at the tip of the path.
func (p *Path) Append(c Command) {
	p.commands = append(p.commands, c)
}

// Tip returns the most recently appended command, or nil for an empty path.
func (p *Path) Tip() Command {
	if len(p.commands) == 0 {
		return nil
	}
	return p.commands[len(p.commands)-1]
}

// PopTip removes and returns the most recently appended command.
// Returns nil for an empty path.
func (p *Path) PopTip() Command {
	if len(p.commands) == 0 {
		return nil
	}
	c := p.commands[len(p.commands)-1]
	p.commands = p.commands[:len(p.commands)-1]
	return c
}

// SetTip replaces the most recently appended command.
func (p *Path) SetTip(c Command) {
	if len(p.commands) == 0 {
		p.commands = append(p.commands, c)
		return
	}
	p.commands[len(p.commands)-1] = c
}

// Anchor returns the point of the initial MoveTo.
func (p *Path) Anchor() (Point, bool) {
	if len(p.commands) == 0 {
		return Point{}, false
	}
	m, ok := p.commands[0].(MoveTo)
	if !ok {
		return Point{}, false
	}
	return m.Point, true
}

// SetAnchor rewrites the point of the initial MoveTo.
func (p *Path) SetAnchor(pt Point) {
	if len(p.commands) == 0 {
		return
	}
	if _, ok := p.commands[0].(MoveTo); ok {
		p.commands[0] = MoveTo{Point: pt}
	}
}

// Current returns the endpoint of the last command carrying one,
// scanning backwards past any ClosePath.
func (p *Path) Current() (Point, bool) {
	for i := len(p.commands) - 1; i >= 0; i-- {
		if pt, ok := EndPoint(p.commands[i]); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// FirstDrawn returns the endpoint of the first drawing command after the
// initial MoveTo. Using the first drawn point rather than the anchor
// tolerates paths whose very first segment is a curve.
func (p *Path) FirstDrawn() (Point, bool) {
	for _, c := range p.commands[min(1, len(p.commands)):] {
		if pt, ok := EndPoint(c); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// Clone creates a deep copy of the path. Commands are value types, so a
// slice copy is a full copy.
func (p *Path) Clone() *Path {
	c := &Path{commands: make([]Command, len(p.commands))}
	copy(c.commands, p.commands)
	return c
}
