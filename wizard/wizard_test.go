package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sculpt/decl"
	"github.com/teranos/sculpt/errors"
	"github.com/teranos/sculpt/graph"
	"github.com/teranos/sculpt/internal/fixture"
	"github.com/teranos/sculpt/resolve"
	"github.com/teranos/sculpt/schema"
)

func compile(t *testing.T, decls []decl.Decl) *schema.Schema {
	t.Helper()
	g, err := graph.Build(decls)
	require.NoError(t, err)
	res, err := resolve.Resolve(g)
	require.NoError(t, err)
	s, err := schema.Compile(res, schema.Options{})
	require.NoError(t, err)
	return s
}

func TestDefaultSheet(t *testing.T) {
	trace := NewTrace(DefaultDriver{})

	v, err := Run(compile(t, fixture.Sheet()), trace)
	require.NoError(t, err)

	assert.Equal(t, "Sheet{race: Dwarf{subrace: HillDwarf, tool: Hammer}, class: Bard}", v.String())
	assert.Equal(t, []string{"Race", "DwarfSubrace", "ToolProficiency", "Class"}, trace.Sites())
	assert.Equal(t, "Dwarf", v.Field("race").Variant)
	assert.Equal(t, "Bard", v.Field("class").Variant)
}

func TestWoodElfSheet(t *testing.T) {
	trace := NewTrace(Overrides{Choices: map[string]string{
		"Race":       "Elf",
		"ElfSubrace": "WoodElf",
	}})

	v, err := Run(compile(t, fixture.Sheet()), trace)
	require.NoError(t, err)

	assert.Equal(t, "Sheet{race: Elf{subrace: WoodElf(Cantrip{cantrip: Prestidigitation})}, class: Bard}", v.String())
	assert.Equal(t, []Step{
		{Site: "Race", Tag: "Elf"},
		{Site: "ElfSubrace", Tag: "WoodElf"},
		{Site: "BaseCantrip", Tag: "Prestidigitation"},
		{Site: "Class", Tag: "Bard"},
	}, trace.Steps)
}

// Every combination of choices must ask each site at most once, and a site
// follows another exactly when the chosen variant links to it.
func TestLinksDriveCallbacks(t *testing.T) {
	s := compile(t, fixture.Sheet())

	combos := [][2]string{
		{"Dwarf", "DarkElf"},
		{"Elf", "DarkElf"},
		{"Elf", "HighElf"},
		{"Elf", "WoodElf"},
	}
	for _, c := range combos {
		t.Run(c[0]+"/"+c[1], func(t *testing.T) {
			trace := NewTrace(Overrides{Choices: map[string]string{"Race": c[0], "ElfSubrace": c[1], "Class": "Paladin"}})
			_, err := Run(s, trace)
			require.NoError(t, err)

			seen := map[string]bool{}
			for i, step := range trace.Steps {
				assert.False(t, seen[step.Site], "%s asked twice", step.Site)
				seen[step.Site] = true

				p, ok := s.Picker(step.Site)
				require.True(t, ok)
				next := p.Next(step.Tag)
				if i+1 < len(trace.Steps) {
					require.NotNil(t, next, "%s/%s has no link but %s followed", step.Site, step.Tag, trace.Steps[i+1].Site)
					assert.Equal(t, next.Name, trace.Steps[i+1].Site)
				} else {
					assert.Nil(t, next)
				}
			}
			assert.True(t, seen["Class"], "class decided on every branch")
		})
	}
}

func TestSingleVariantStillFulfilled(t *testing.T) {
	s := compile(t, []decl.Decl{
		fixture.Root("Sheet", fixture.Field("class", "Class")),
		fixture.Decision("Class", fixture.Tag("Bard")),
	})

	calls := 0
	v, err := Run(s, DriverFunc(func(p Picker) error {
		calls++
		return p.Fulfill(p.Options()[0])
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Sheet{class: Bard}", v.String())
}

func TestNoDecisions(t *testing.T) {
	s := compile(t, []decl.Decl{
		fixture.Root("Sheet", fixture.Field("level", "Level"), fixture.Field("stats", "Stats")),
		fixture.Sum("Level", fixture.Tag("One")),
		fixture.Product("Stats", fixture.Field("alignment", "Alignment")),
		fixture.Sum("Alignment", fixture.Tag("Neutral")),
	})

	v, err := Run(s, DriverFunc(func(p Picker) error {
		t.Fatalf("unexpected pick of %s", p.Site())
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, "Sheet{level: One, stats: Stats{alignment: Neutral}}", v.String())
}

func TestPayloadConversion(t *testing.T) {
	decls := fixture.Sheet()
	decls[0] = fixture.Root("Sheet", fixture.Field("subrace", "ElfSubrace"))

	s := compile(t, decls)

	v, err := Run(s, DefaultDriver{})
	require.NoError(t, err)
	assert.Equal(t, "Sheet{subrace: DarkElf}", v.String())

	_, err = Run(s, Overrides{Choices: map[string]string{"ElfSubrace": "WoodElf"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPayloadConversion))
	assert.Contains(t, err.Error(), "cannot turn WoodElf into ElfSubrace")
}

func TestDriverMisuse(t *testing.T) {
	s := compile(t, fixture.Sheet())

	tests := []struct {
		name   string
		driver Driver
		want   error
	}{
		{
			name:   "never fulfills",
			driver: DriverFunc(func(p Picker) error { return nil }),
			want:   ErrUnfulfilled,
		},
		{
			name:   "unknown tag",
			driver: Overrides{Choices: map[string]string{"Class": "Wizard"}},
			want:   ErrInvalidChoice,
		},
		{
			name: "fulfills twice, ignoring the error",
			driver: DriverFunc(func(p Picker) error {
				_ = p.Fulfill(p.Options()[0])
				_ = p.Fulfill(p.Options()[0])
				return nil
			}),
			want: ErrAlreadyFulfilled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Run(s, tt.driver)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestPickerSurface(t *testing.T) {
	s := compile(t, fixture.Sheet())

	var got []string
	_, err := Run(s, DriverFunc(func(p Picker) error {
		got = append(got, p.Site()+"|"+p.Type()+"|"+p.Path())
		return DefaultDriver{}.Pick(p)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Race|Race|race",
		"DwarfSubrace|DwarfSubrace|race.Dwarf.subrace",
		"ToolProficiency|ToolProficiency|race.Dwarf.tool",
		"Class|Class|class",
	}, got)
}

func TestAliasedSites(t *testing.T) {
	s := compile(t, []decl.Decl{
		fixture.Root("Root",
			decl.FieldRef{Name: "field1", Type: "Enum", Alias: "Enum1"},
			decl.FieldRef{Name: "field2", Type: "Enum", Alias: "Enum2"}),
		fixture.Decision("Enum", fixture.Tag("A"), fixture.Tag("B")),
	})

	v, err := Run(s, Overrides{Choices: map[string]string{"Enum2": "B"}})
	require.NoError(t, err)
	assert.Equal(t, "Root{field1: A, field2: B}", v.String())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		want  string
	}{
		{"nil", nil, "<nil>"},
		{"empty variant", &Value{Kind: decl.Sum, Shape: decl.Empty, Variant: "Bard"}, "Bard"},
		{"empty product", &Value{Type: "Unit", Kind: decl.Product, Shape: decl.Empty}, "Unit{}"},
		{
			"positional product",
			&Value{Type: "Pair", Kind: decl.Product, Shape: decl.Positional, Fields: []Field{
				{Name: "A", Value: &Value{Kind: decl.Sum, Shape: decl.Empty, Variant: "X"}},
				{Name: "B", Value: &Value{Kind: decl.Sum, Shape: decl.Empty, Variant: "Y"}},
			}},
			"Pair(X, Y)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}
