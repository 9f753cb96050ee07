package writer

import (
	"strconv"
	"strings"

	"github.com/rubiojr/jsexport/model"
)

// Naming maps compiled entities to JS identifiers. Names are assigned on
// first use and stay stable for the lifetime of the Naming, so the same
// program rendered in the same order always produces the same identifiers.
//
// Class constructors and method bodies share one global identifier space;
// virtual method slots are properties and have a space of their own.
type Naming struct {
	classes map[string]string
	bodies  map[string]string
	slots   map[string]string
	globals map[string]bool
	props   map[string]bool
}

// NewNaming returns an empty Naming.
func NewNaming() *Naming {
	return &Naming{
		classes: map[string]string{},
		bodies:  map[string]string{},
		slots:   map[string]string{},
		globals: map[string]bool{},
		props:   map[string]bool{},
	}
}

// ClassName returns the identifier for a qualified class name:
// the initials of its package segments, "_", then the simple name
// ("org.example.Foo" becomes "oe_Foo").
func (n *Naming) ClassName(name string) string {
	if id, ok := n.classes[name]; ok {
		return id
	}
	id := unique(n.globals, classBase(name))
	n.classes[name] = id
	return id
}

// MethodBodyName returns the identifier of a compiled method body
// ("oe_Foo_bar", constructors "oe_Foo__init_").
func (n *Naming) MethodBodyName(ref model.MethodRef) string {
	key := ref.String()
	if id, ok := n.bodies[key]; ok {
		return id
	}
	id := unique(n.globals, n.ClassName(ref.Class)+"_"+sanitize(ref.Desc.Name))
	n.bodies[key] = id
	return id
}

// MethodName returns the prototype property of a virtual method ("$bar").
// Overloads get numeric suffixes in first-use order.
func (n *Naming) MethodName(desc model.MethodDesc) string {
	key := desc.String()
	if id, ok := n.slots[key]; ok {
		return id
	}
	id := unique(n.props, "$"+sanitize(desc.Name))
	n.slots[key] = id
	return id
}

func classBase(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return sanitize(name)
	}
	var sb strings.Builder
	for _, seg := range strings.Split(name[:i], ".") {
		if seg != "" {
			sb.WriteByte(seg[0])
		}
	}
	sb.WriteByte('_')
	sb.WriteString(name[i+1:])
	return sanitize(sb.String())
}

func unique(used map[string]bool, base string) string {
	id := base
	for i := 0; used[id]; i++ {
		id = base + strconv.Itoa(i)
	}
	used[id] = true
	return id
}

// sanitize replaces characters that cannot appear in a JS identifier.
func sanitize(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
			sb.WriteByte(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				sb.WriteByte('_')
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
