package datepicker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCyclicGraph means some action can, through the edges, re-trigger an
	// edge that watches one of its own outputs.
	ErrCyclicGraph = errors.New("derivation graph has a cycle")
	// ErrInvalidEdge means an edge watches nothing or fires an action that
	// needs a payload.
	ErrInvalidEdge = errors.New("invalid derivation edge")
)

// Edge watches some state fields and fires an action when they change.
// It only fires once every watched field is ready.
type Edge struct {
	Name  string
	Watch []Field
	Fire  Kind
}

// Graph is an ordered list of edges. Order is subscription order.
type Graph struct {
	Edges []Edge
}

// DefaultGraph is the recompute pipeline: navigation recalculates the grids,
// the day grid is formatted, and every grid is flagged whenever its input,
// the selection or the hover changes.
func DefaultGraph() Graph {
	return Graph{Edges: []Edge{
		{Name: "recalculate on view change", Watch: []Field{FieldViewMode, FieldViewDate}, Fire: KindCalculate},
		{Name: "format days", Watch: []Field{FieldMonthsModel}, Fire: KindFormat},
		{Name: "flag formatted days", Watch: []Field{FieldFormattedMonths}, Fire: KindFlag},
		{Name: "flag on selection", Watch: []Field{FieldSelectedDate}, Fire: KindFlag},
		{Name: "flag months calendar", Watch: []Field{FieldMonthsCalendar}, Fire: KindFlag},
		{Name: "flag years calendar", Watch: []Field{FieldYearsCalendarModel}, Fire: KindFlag},
		{Name: "flag on hover", Watch: []Field{FieldHoveredDate}, Fire: KindFlag},
	}}
}

// Validate checks every edge and that no chain of watched field, fired
// action and written field leads back to a field already on the chain.
func (g Graph) Validate() error {
	next := make(map[Field][]Field)
	for i, e := range g.Edges {
		if len(e.Watch) == 0 {
			return fmt.Errorf("%w: edge %d (%s) watches no field", ErrInvalidEdge, i, e.Name)
		}
		if _, ok := trigger(e.Fire); !ok {
			return fmt.Errorf("%w: edge %d (%s) fires %q", ErrInvalidEdge, i, e.Name, e.Fire)
		}
		for _, w := range e.Watch {
			next[w] = append(next[w], e.Fire.Writes()...)
		}
	}

	const (
		unvisited = iota
		onPath
		done
	)
	mark := make(map[Field]int)
	var path []Field

	var visit func(f Field) error
	visit = func(f Field) error {
		switch mark[f] {
		case onPath:
			return fmt.Errorf("%w: %s", ErrCyclicGraph, formatPath(append(path, f)))
		case done:
			return nil
		}
		mark[f] = onPath
		path = append(path, f)
		for _, n := range next[f] {
			if err := visit(n); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		mark[f] = done
		return nil
	}

	for _, e := range g.Edges {
		for _, w := range e.Watch {
			if err := visit(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Wire validates g and subscribes every edge to s in order. after, when
// non-nil, runs once the fired action has been fully dispatched. The caller
// owns the returned subscriptions.
func (g Graph) Wire(s *Store, after func(Edge, State)) ([]*Subscription, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	subs := make([]*Subscription, 0, len(g.Edges))
	for _, e := range g.Edges {
		action, _ := trigger(e.Fire)
		subs = append(subs, Observe(s, identity, e.unchanged, func(st State) {
			if !e.ready(st) {
				return
			}
			s.Dispatch(action)
			if after != nil {
				after(e, st)
			}
		}))
	}
	return subs, nil
}

func (g Graph) String() string {
	var b strings.Builder
	for i, e := range g.Edges {
		names := make([]string, len(e.Watch))
		for j, w := range e.Watch {
			names[j] = w.String()
		}
		fmt.Fprintf(&b, "%d. %-28s %s -> %s\n", i+1, e.Name, strings.Join(names, " + "), e.Fire)
	}
	return b.String()
}

func (e Edge) ready(s State) bool {
	for _, f := range e.Watch {
		if !f.Ready(s) {
			return false
		}
	}
	return true
}

func (e Edge) unchanged(a, b State) bool {
	for _, f := range e.Watch {
		if !f.Equal(a, b) {
			return false
		}
	}
	return true
}

func identity(s State) State { return s }

func formatPath(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, " -> ")
}
