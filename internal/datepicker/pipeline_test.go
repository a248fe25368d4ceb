package datepicker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGraph_IsAcyclic(t *testing.T) {
	g := DefaultGraph()
	require.NoError(t, g.Validate())
	assert.Len(t, g.Edges, 7)
}

func TestValidate_RejectsFeedbackEdges(t *testing.T) {
	cases := []struct {
		name string
		edge Edge
	}{
		{"flag output back to calculate", Edge{Name: "loop", Watch: []Field{FieldFlaggedMonths}, Fire: KindCalculate}},
		{"calculate watching its own output", Edge{Name: "self", Watch: []Field{FieldMonthsCalendar}, Fire: KindCalculate}},
		{"flag watching flagged years", Edge{Name: "self", Watch: []Field{FieldYearsCalendarFlagged}, Fire: KindFlag}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := DefaultGraph()
			g.Edges = append(g.Edges, tc.edge)
			err := g.Validate()
			require.ErrorIs(t, err, ErrCyclicGraph)
			assert.Contains(t, err.Error(), "->")
		})
	}
}

func TestValidate_RejectsInvalidEdges(t *testing.T) {
	noWatch := Graph{Edges: []Edge{{Name: "empty", Fire: KindFlag}}}
	assert.ErrorIs(t, noWatch.Validate(), ErrInvalidEdge)

	payload := Graph{Edges: []Edge{{Name: "select", Watch: []Field{FieldViewDate}, Fire: KindSelect}}}
	assert.ErrorIs(t, payload.Validate(), ErrInvalidEdge)
}

func TestKindWrites_CoversEveryKind(t *testing.T) {
	for _, k := range []Kind{
		KindSelect, KindChangeViewMode, KindNavigateStep, KindNavigateTo, KindHoverDay,
		KindCalculate, KindFormat, KindFlag, KindRenderOptions,
	} {
		assert.NotEmpty(t, k.Writes(), "kind %s", k)
	}
}

func TestGraph_String(t *testing.T) {
	out := DefaultGraph().String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "viewMode + viewDate -> calculate")
	assert.Contains(t, lines[6], "hoveredDate -> flag")
}

func TestWire_SkipsNotReadyFields(t *testing.T) {
	var trace []Kind
	s := NewStore(State{}, Reducer{}.Reduce, WithObserver(func(a Action) { trace = append(trace, a.Kind()) }))

	subs, err := DefaultGraph().Wire(s, nil)
	require.NoError(t, err)
	assert.Len(t, subs, 7)
	assert.Empty(t, trace, "nothing is ready in an empty state")
}

func TestField_StringUnknown(t *testing.T) {
	assert.Equal(t, "viewDate", FieldViewDate.String())
	assert.Equal(t, "unknown", Field(99).String())
}
