package command

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/strongspace/cli/internal/domain"
)

const (
	// Separator joins the segments of a command string.
	Separator = ":"

	// DefaultOperation is used when a command names only a type.
	DefaultOperation = "index"

	// FallbackType receives bare commands that match no registered type.
	FallbackType = "Base"
)

// HandlerType is a node in the registry tree. A node without a factory is a
// pure namespace.
type HandlerType struct {
	// Name is the canonical type name, e.g. "SshKeys".
	Name string
	// Command is the segment used on the command line, e.g. "ssh_keys".
	Command    string
	Summary    string
	Operations []OperationInfo
	New        Factory

	parent   *HandlerType
	children map[string]*HandlerType
}

// Path returns the command string prefix for this type, e.g. "spaces".
func (t *HandlerType) Path() string {
	var parts []string
	for n := t; n != nil && n.parent != nil; n = n.parent {
		parts = append(parts, n.Command)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, Separator)
}

// Children returns the nested types sorted by command name.
func (t *HandlerType) Children() []*HandlerType {
	out := make([]*HandlerType, 0, len(t.children))
	for _, c := range t.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Command < out[j].Command })
	return out
}

// TypeSpec describes a handler type to register.
type TypeSpec struct {
	Command    string
	Summary    string
	Operations []OperationInfo
	New        Factory
	// Parent nests the type under an existing namespace. Nil means root.
	Parent *HandlerType
}

// Binding is the result of resolving a command string.
type Binding struct {
	Type      *HandlerType
	Operation string
}

// New constructs the bound handler.
func (b Binding) New(args []string, session *domain.Session) (Handler, error) {
	if b.Type == nil || b.Type.New == nil {
		return nil, fmt.Errorf("%w: %s is not runnable", ErrInvalidCommand, b.Type.Path())
	}
	h := b.Type.New(args, session)
	if h == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCommand, b.Type.Path())
	}
	return h, nil
}

// Registry maps canonical type names to handler types.
type Registry struct {
	mu       sync.RWMutex
	root     *HandlerType
	fallback *HandlerType
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{root: &HandlerType{children: map[string]*HandlerType{}}}
}

// Register adds a type under spec.Parent, or at the root. It panics when
// the name is already taken under that parent, since that is a
// programming error in the built-in table.
func (r *Registry) Register(spec TypeSpec) *HandlerType {
	t, err := r.add(spec)
	if err != nil {
		panic(err)
	}
	return t
}

// TryRegister is Register for types discovered at runtime. It returns an
// error instead of panicking on conflicts.
func (r *Registry) TryRegister(spec TypeSpec) (*HandlerType, error) {
	return r.add(spec)
}

func (r *Registry) add(spec TypeSpec) (*HandlerType, error) {
	if spec.Command == "" || strings.Contains(spec.Command, Separator) {
		return nil, fmt.Errorf("invalid command name %q", spec.Command)
	}
	name := TypeName(spec.Command)

	r.mu.Lock()
	defer r.mu.Unlock()

	parent := spec.Parent
	if parent == nil {
		parent = r.root
	}
	if _, exists := parent.children[name]; exists {
		return nil, fmt.Errorf("handler type %s already registered", name)
	}
	t := &HandlerType{
		Name:       name,
		Command:    spec.Command,
		Summary:    spec.Summary,
		Operations: spec.Operations,
		New:        spec.New,
		parent:     parent,
		children:   map[string]*HandlerType{},
	}
	parent.children[name] = t
	return t, nil
}

// SetFallback installs the type that receives unmatched bare commands. The
// fallback is not reachable by name.
func (r *Registry) SetFallback(spec TypeSpec) *HandlerType {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = &HandlerType{
		Name:       FallbackType,
		Command:    spec.Command,
		Summary:    spec.Summary,
		Operations: spec.Operations,
		New:        spec.New,
		children:   map[string]*HandlerType{},
	}
	return r.fallback
}

// Fallback returns the fallback type, or nil.
func (r *Registry) Fallback() *HandlerType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Has reports whether a root type exists for the given command segment.
func (r *Registry) Has(segment string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.root.children[TypeName(segment)]
	return ok
}

// Lookup finds the type for a command prefix such as "spaces" or
// "ssh_keys". It does not consider the fallback.
func (r *Registry) Lookup(path string) (*HandlerType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current := r.root
	for _, p := range strings.Split(path, Separator) {
		next, ok := current.children[TypeName(p)]
		if !ok || p == "" {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Types returns the root types sorted by command name.
func (r *Registry) Types() []*HandlerType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root.Children()
}

// Commands lists every runnable command string, sorted.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	var walk func(t *HandlerType)
	walk = func(t *HandlerType) {
		path := t.Path()
		for _, op := range t.Operations {
			if op.Name == DefaultOperation {
				out = append(out, path)
				continue
			}
			out = append(out, path+Separator+op.Name)
		}
		for _, c := range t.children {
			walk(c)
		}
	}
	for _, c := range r.root.children {
		walk(c)
	}
	if r.fallback != nil {
		for _, op := range r.fallback.Operations {
			out = append(out, op.Name)
		}
	}
	sort.Strings(out)
	return out
}

// Resolve maps a command string to a handler type and operation name.
// It never constructs a handler.
func (r *Registry) Resolve(command string) (Binding, error) {
	parts := strings.Split(command, Separator)
	for _, p := range parts {
		if p == "" {
			return Binding{}, fmt.Errorf("%w: %q", ErrInvalidCommand, command)
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(parts) == 1 {
		if t, ok := r.root.children[TypeName(command)]; ok {
			return Binding{Type: t, Operation: DefaultOperation}, nil
		}
		if r.fallback == nil {
			return Binding{}, fmt.Errorf("%w: %s", ErrInvalidCommand, command)
		}
		return Binding{Type: r.fallback, Operation: command}, nil
	}

	current := r.root
	for _, p := range parts[:len(parts)-1] {
		next, ok := current.children[TypeName(p)]
		if !ok {
			return Binding{}, fmt.Errorf("%w: %s", ErrInvalidCommand, command)
		}
		current = next
	}
	return Binding{Type: current, Operation: parts[len(parts)-1]}, nil
}

// TypeName converts a command segment to its canonical type name:
// underscore-separated words are capitalised and joined, so "ssh_keys"
// becomes "SshKeys".
func TypeName(segment string) string {
	var b strings.Builder
	for _, word := range strings.Split(segment, "_") {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(word[size:])
	}
	return b.String()
}
