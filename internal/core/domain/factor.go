// Package domain contains the core models of pdctl: factors, projects, intentions,
// phases, jobs and their summaries.
package domain

import (
	"iter"
	"slices"
	"strings"
)

// FactorPath is a hierarchical, dot separated factor address such as "http.client.test".
// The empty path is the product root.
type FactorPath string

// ParseFactorPath normalizes a user supplied path. Both "." and "/" separate segments,
// and empty segments are dropped.
func ParseFactorPath(s string) FactorPath {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '/' || r == '\\'
	})
	return FactorPath(strings.Join(fields, "."))
}

// NewFactorPath builds a path from segments.
func NewFactorPath(segments ...string) FactorPath {
	return ParseFactorPath(strings.Join(segments, "."))
}

// String returns the dotted form.
func (p FactorPath) String() string {
	return string(p)
}

// IsRoot reports whether the path is empty.
func (p FactorPath) IsRoot() bool {
	return p == ""
}

// Segments returns the path split into its segments.
func (p FactorPath) Segments() []string {
	if p.IsRoot() {
		return nil
	}
	return strings.Split(string(p), ".")
}

// Identifier returns the final segment.
func (p FactorPath) Identifier() string {
	s := string(p)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Container returns the path without its final segment.
func (p FactorPath) Container() FactorPath {
	s := string(p)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return FactorPath(s[:i])
	}
	return ""
}

// Join appends sub to p.
func (p FactorPath) Join(sub FactorPath) FactorPath {
	switch {
	case p.IsRoot():
		return sub
	case sub.IsRoot():
		return p
	default:
		return p + "." + sub
	}
}

// Within reports whether p equals ancestor or lies below it, comparing whole segments.
func (p FactorPath) Within(ancestor FactorPath) bool {
	if ancestor.IsRoot() || p == ancestor {
		return true
	}
	return strings.HasPrefix(string(p), string(ancestor)+".")
}

// Relative returns p with the ancestor prefix removed.
func (p FactorPath) Relative(ancestor FactorPath) (FactorPath, bool) {
	if !p.Within(ancestor) {
		return "", false
	}
	if ancestor.IsRoot() {
		return p, true
	}
	return FactorPath(strings.TrimPrefix(strings.TrimPrefix(string(p), string(ancestor)), ".")), true
}

// Factor is an addressable buildable or testable unit inside a project.
type Factor struct {
	Path    FactorPath `json:"path"`
	Type    string     `json:"type"`
	Sources []string   `json:"sources"`
}

// Identifier returns the factor's final path segment.
func (f Factor) Identifier() string {
	return f.Path.Identifier()
}

// Project is a named collection of factors rooted at a factor path.
type Project struct {
	Identifier string     `json:"identifier"`
	Factor     FactorPath `json:"factor"`
	Type       string     `json:"type,omitempty"`
	Dir        string     `json:"dir"`
	Requires   []string   `json:"requires,omitempty"`
	Factors    []Factor   `json:"factors"`
}

// Select yields the project's factors lying within the given project relative subpath,
// in path order.
func (p *Project) Select(sub FactorPath) iter.Seq[Factor] {
	base := p.Factor.Join(sub)
	return func(yield func(Factor) bool) {
		for _, f := range p.Factors {
			if !f.Path.Within(base) {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Lookup returns the factor with exactly the given absolute path.
func (p *Project) Lookup(path FactorPath) (Factor, bool) {
	i, found := slices.BinarySearchFunc(p.Factors, path, func(f Factor, t FactorPath) int {
		return strings.Compare(string(f.Path), string(t))
	})
	if !found {
		return Factor{}, false
	}
	return p.Factors[i], true
}

// SortFactors orders factors by path so Select and Lookup are deterministic.
func SortFactors(factors []Factor) {
	slices.SortFunc(factors, func(a, b Factor) int {
		return strings.Compare(string(a.Path), string(b.Path))
	})
}
