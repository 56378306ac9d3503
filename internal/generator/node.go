package generator

import (
	"fmt"
	"strings"
)

// Node is one piece of a template: literal lines, or an optional group of
// nodes that is only emitted when its condition holds.
type Node interface {
	lines(marked bool) []string
}

type line string

func (l line) lines(bool) []string {
	return []string{string(l)}
}

// Line is a single literal line.
func Line(s string) Node {
	return line(s)
}

func Linef(format string, args ...any) Node {
	return line(fmt.Sprintf(format, args...))
}

func Blank() Node {
	return line("")
}

type text []string

func (t text) lines(bool) []string {
	return t
}

// Text splits s on newlines; each part becomes a line.
func Text(s string) Node {
	return text(strings.Split(s, "\n"))
}

// Lines wraps already split lines.
func Lines(ls ...string) Node {
	return text(ls)
}

type seq []Node

func (s seq) lines(marked bool) []string {
	return collect(s, marked)
}

func Seq(nodes ...Node) Node {
	return seq(nodes)
}

type optional struct {
	present bool
	body    []Node
}

// When emits body only if cond is true.
func When(cond bool, body ...Node) Node {
	return optional{present: cond, body: body}
}

func (o optional) lines(marked bool) []string {
	body := collect(o.body, marked)
	if o.present {
		return body
	}
	if !marked || len(body) == 0 {
		return nil
	}
	// the marker stands in for the first line and swallows the rest
	out := make([]string, 0, len(body))
	out = append(out, Marker(len(body)-1))
	return append(out, body[1:]...)
}

func collect(nodes []Node, marked bool) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.lines(marked)...)
	}
	return out
}

type Template []Node

// Render serializes the present nodes, one terminated line each.
func (t Template) Render() string {
	return join(collect(t, false))
}

// RenderMarked renders absent optional nodes as sentinel markers followed by
// the lines the marker removes. Elide(t.RenderMarked()) == t.Render().
func (t Template) RenderMarked() string {
	return join(collect(t, true))
}

func join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
