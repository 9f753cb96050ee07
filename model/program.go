package model

// Program is an in-memory ClassSource. Class names are enumerated in
// insertion order.
type Program struct {
	names   []string
	known   map[string]bool
	classes map[string]*Class
}

// NewProgram returns a Program holding the given classes.
func NewProgram(classes ...*Class) *Program {
	p := &Program{known: map[string]bool{}, classes: map[string]*Class{}}
	for _, c := range classes {
		p.Add(c)
	}
	return p
}

// Add registers a class descriptor. Methods without an owner are assigned
// to the class. Re-adding a name replaces its descriptor in place.
func (p *Program) Add(c *Class) {
	for _, m := range c.Methods {
		if m.Owner == "" {
			m.Owner = c.Name
		}
	}
	p.declare(c.Name)
	p.classes[c.Name] = c
}

// Declare registers a class name with no descriptor.
func (p *Program) Declare(name string) {
	p.declare(name)
}

// Strip drops the descriptor of a class but keeps its name enumerable,
// the state a class is left in after dead-code elimination.
func (p *Program) Strip(name string) {
	delete(p.classes, name)
}

func (p *Program) declare(name string) {
	if p.known[name] {
		return
	}
	p.known[name] = true
	p.names = append(p.names, name)
}

// ClassNames implements ClassSource.
func (p *Program) ClassNames() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Get implements ClassSource.
func (p *Program) Get(name string) (*Class, bool) {
	c, ok := p.classes[name]
	return c, ok
}
