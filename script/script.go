// Package script maps terminal commands to sequences of text lines and effects.
package script

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cyberfx/effect"
)

//go:embed commands.yaml
var defaultCommands []byte

var (
	// ErrUnknownCommand is returned by Lookup for commands outside the table
	ErrUnknownCommand = errors.New("command not found")
	// ErrInvalidScript wraps table validation failures
	ErrInvalidScript = errors.New("invalid script")
)

// TextType marks a directive that prints a line, any other type names an effect
const TextType = "text"

// Directive is one step of a command's response
type Directive struct {
	Type        string   `yaml:"type"`
	Style       string   `yaml:"style,omitempty"`
	Text        string   `yaml:"text,omitempty"`
	Choices     []string `yaml:"choices,omitempty"`
	Duration    int      `yaml:"duration,omitempty"` // ms, zero means the effect default
	DelayBefore int      `yaml:"delay_before,omitempty"`
	DelayAfter  int      `yaml:"delay_after,omitempty"`

	kind effect.Kind
}

// IsText reports whether the directive prints instead of animating
func (d Directive) IsText() bool {
	return d.Type == TextType
}

// Kind returns the effect for a non-text directive, valid after table validation
func (d Directive) Kind() effect.Kind {
	return d.kind
}

// Command is a named response
type Command struct {
	Name        string      `yaml:"-"`
	Description string      `yaml:"description"`
	Response    []Directive `yaml:"response"`
}

// Table is an immutable set of commands keyed by their normalized name
type Table struct {
	commands map[string]Command
}

// Normalize trims and lowercases a typed command
func Normalize(cmd string) string {
	return strings.ToLower(strings.TrimSpace(cmd))
}

// Parse decodes and validates a YAML command table
func Parse(data []byte) (*Table, error) {
	raw := make(map[string]Command)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	t := &Table{commands: make(map[string]Command, len(raw))}
	for name, c := range raw {
		key := Normalize(name)
		if key == "" {
			return nil, fmt.Errorf("%w: empty command name", ErrInvalidScript)
		}
		if _, dup := t.commands[key]; dup {
			return nil, fmt.Errorf("%w: duplicate command %q", ErrInvalidScript, key)
		}
		for i := range c.Response {
			if err := c.Response[i].resolve(); err != nil {
				return nil, fmt.Errorf("%w: %s step %d: %v", ErrInvalidScript, key, i+1, err)
			}
		}
		c.Name = key
		t.commands[key] = c
	}
	return t, nil
}

func (d *Directive) resolve() error {
	if d.DelayBefore < 0 || d.DelayAfter < 0 || d.Duration < 0 {
		return errors.New("negative timing")
	}
	if d.IsText() {
		if d.Text == "" && len(d.Choices) == 0 && d.Style == "" {
			return errors.New("text directive without text")
		}
		return nil
	}
	k, err := effect.ParseKind(d.Type)
	if err != nil {
		return err
	}
	d.kind = k
	return nil
}

// Default returns the embedded command table
func Default() (*Table, error) {
	return Parse(defaultCommands)
}

// LoadFile parses a command table from disk
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Lookup resolves a typed command
func (t *Table) Lookup(cmd string) (Command, error) {
	c, ok := t.commands[Normalize(cmd)]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, strings.TrimSpace(cmd))
	}
	return c, nil
}

// Names returns the command names sorted
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.commands))
	for name := range t.commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Effects returns the effects a command plays, in order
func (c Command) Effects() []effect.Kind {
	var out []effect.Kind
	for _, d := range c.Response {
		if !d.IsText() {
			out = append(out, d.kind)
		}
	}
	return out
}

// WriteTo encodes the table back to YAML
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	out := make(map[string]Command, len(t.commands))
	for k, v := range t.commands {
		out[k] = v
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return 0, fmt.Errorf("marshal script: %w", err)
	}
	n, err := w.Write(data)
	return int64(n), err
}
