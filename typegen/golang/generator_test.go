package golang

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
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
	s, err := schema.Compile(res, schema.Options{Source: "sheet.yaml"})
	require.NoError(t, err)
	return s
}

func generate(t *testing.T, decls []decl.Decl) string {
	t.Helper()
	out, err := (&Generator{Version: "0.1.0"}).GenerateFile(compile(t, decls))
	require.NoError(t, err)
	return string(out)
}

// parse fails the test when src is not a syntactically valid Go file
func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "sheet_sculpt.go", src, parser.ParseComments)
	require.NoError(t, err, src)
	return f
}

func declared(f *ast.File) map[string]bool {
	names := make(map[string]bool)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					names[spec.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range spec.Names {
						names[n.Name] = true
					}
				}
			}
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
			}
		}
	}
	return names
}

func TestGenerator_Metadata(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "go", g.Language())
	assert.Equal(t, "go", g.FileExtension())
}

func TestGenerateFile_Header(t *testing.T) {
	src := generate(t, fixture.Sheet())

	lines := strings.SplitN(src, "\n", 4)
	assert.Equal(t, "// Code generated by sculpt v0.1.0. DO NOT EDIT.", lines[0])
	assert.Equal(t, "// Source: sheet.yaml", lines[1])
	assert.Equal(t, "sheet", parse(t, src).Name.Name)
}

func TestGenerateFile_Parses(t *testing.T) {
	f := parse(t, generate(t, fixture.Sheet()))
	names := declared(f)

	for _, want := range []string{
		"Sheet", "Race", "RaceDwarf", "RaceElf", "Class", "ClassBard", "ClassPaladin",
		"ElfSubraceWoodElf", "Cantrip", "BaseCantripPrestidigitation",
		"RaceOption", "RaceOptions", "RaceOptionDwarf", "ClassOptionPaladin",
		"RacePicker", "DwarfSubracePicker", "BaseCantripPicker", "ClassPicker",
		"SheetCallbacks", "DefaultSheetCallbacks", "BuildSheet",
		"sheetWizard", "sheetBuilder", "sheetRaceElfSubraceWoodElfCantripBuilder",
		"sheetRacePicker", "sheetClassPicker",
	} {
		assert.True(t, names[want], "missing declaration %s", want)
	}
}

func TestGenerateFile_Deterministic(t *testing.T) {
	first := generate(t, fixture.Sheet())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, generate(t, fixture.Sheet()))
	}
}

func TestGenerateFile_Fragments(t *testing.T) {
	src := generate(t, fixture.Sheet())

	tests := []struct {
		name     string
		fragment string
	}{
		{"sealed sum", "type Race interface {\n\tfmt.Stringer\n\tisRace()\n}"},
		{"variant struct", "type RaceDwarf struct {\n\tSubrace DwarfSubrace\n\tTool ToolProficiency\n}"},
		{"positional payload", "type ElfSubraceWoodElf struct {\n\tCantrip Cantrip\n}"},
		{"positional stringer", `return fmt.Sprintf("WoodElf(%v)", v.Cantrip)`},
		{"named stringer", `return fmt.Sprintf("Sheet{race: %v, class: %v}", v.Race, v.Class)`},
		{"empty variant stringer", `func (ClassBard) String() string { return "Bard" }`},
		{"enum", "const (\n\tClassOptionBard ClassOption = iota\n\tClassOptionPaladin\n)"},
		{"options", "func ClassOptions() []ClassOption {\n\treturn []ClassOption{ClassOptionBard, ClassOptionPaladin}\n}"},
		{"value", "\tcase ClassOptionBard:\n\t\treturn ClassBard{}"},
		{"payload value", `panic("sculpt: cannot turn WoodElf into ElfSubrace without its fields")`},
		{"picker", "type RacePicker interface {"},
		{"fulfill contract", "\tFulfill(choice RaceOption)\n"},
		{"callback", "\tPickElfSubrace(picker ElfSubracePicker)\n"},
		{"default callback", "func (DefaultSheetCallbacks) PickClass(picker ClassPicker) {\n\tpicker.Fulfill(picker.Options()[0])\n}"},
		{"callbacks assertion", "var _ SheetCallbacks = DefaultSheetCallbacks{}"},
		{"decision builder", "type sheetRaceBuilder struct {\n\tchoice *RaceOption\n\tonDwarf sheetRaceDwarfBuilder\n\tonElf sheetRaceElfBuilder\n}"},
		{"unfulfilled", `panic("sculpt: Class not fulfilled at class")`},
		{"nested unfulfilled", `panic("sculpt: BaseCantrip not fulfilled at race.Elf.subrace.WoodElf.Cantrip.cantrip")`},
		{"twice", `panic("sculpt: Race fulfilled twice")`},
		{"slot", "\tslot := &p.w.root.Race.onElf.Subrace.onWoodElf.Cantrip.Cantrip\n"},
		{"expanded slot", "\tslot := &p.w.root.Race.choice\n"},
		{"grouped links", "\tcase ElfSubraceOptionDarkElf, ElfSubraceOptionHighElf:\n\t\tp.w.callbacks.PickClass(sheetClassPicker{w: p.w})\n\tcase ElfSubraceOptionWoodElf:\n\t\tp.w.callbacks.PickBaseCantrip(sheetBaseCantripPicker{w: p.w})\n"},
		{"direct link", "\t*slot = &choice\n\tp.w.callbacks.PickToolProficiency(sheetToolProficiencyPicker{w: p.w})\n}"},
		{"entry point", "func BuildSheet(callbacks SheetCallbacks) Sheet {\n\tw := &sheetWizard{callbacks: callbacks}\n\tcallbacks.PickRace(sheetRacePicker{w: w})\n\treturn w.root.build()\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, src, tt.fragment)
		})
	}
}

func TestGenerateFile_LastDecisionCallsNothing(t *testing.T) {
	src := generate(t, fixture.Sheet())

	_, after, ok := strings.Cut(src, "func (p sheetClassPicker) Fulfill(choice ClassOption) {")
	require.True(t, ok)
	body, _, _ := strings.Cut(after, "\n}\n")
	assert.NotContains(t, body, "p.w.callbacks")
	assert.Contains(t, body, "\tslot := &p.w.root.Class\n")
}

func TestGenerateFile_Leaves(t *testing.T) {
	src := generate(t, []decl.Decl{
		fixture.Root("Sheet", fixture.Field("stats", "Stats"), fixture.Field("class", "Class")),
		fixture.Product("Stats", fixture.Field("alignment", "Alignment"), fixture.Field("level", "Level")),
		fixture.Sum("Alignment", fixture.Tag("Neutral"), fixture.Tag("Chaotic")),
		fixture.Product("Level"),
		fixture.Decision("Class", fixture.Tag("Bard")),
	})
	parse(t, src)
	assert.Contains(t, src, "Stats: Stats{Alignment: AlignmentNeutral{}, Level: Level{}},")
	assert.Contains(t, src, `func (Level) String() string { return "Level{}" }`)
}

func TestGenerateFile_NoDecisions(t *testing.T) {
	src := generate(t, []decl.Decl{
		fixture.Root("Sheet", fixture.Field("name", "Name")),
		fixture.Product("Name"),
	})
	f := parse(t, src)

	assert.Contains(t, src, "type SheetCallbacks interface{}")
	assert.Contains(t, src, "func BuildSheet(callbacks SheetCallbacks) Sheet {\n\tw := &sheetWizard{callbacks: callbacks}\n\treturn w.root.build()\n}")
	assert.Contains(t, src, "var _ fmt.Stringer = Sheet{}", "fmt stays imported")
	assert.True(t, declared(f)["DefaultSheetCallbacks"])
}

func TestGenerateFile_SingleVariant(t *testing.T) {
	src := generate(t, []decl.Decl{
		fixture.Root("Sheet", fixture.Field("class", "Class")),
		fixture.Decision("Class", fixture.Tag("Bard")),
	})
	parse(t, src)
	assert.Contains(t, src, "func ClassOptions() []ClassOption {\n\treturn []ClassOption{ClassOptionBard}\n}")
}

func TestGenerateFile_Aliases(t *testing.T) {
	src := generate(t, []decl.Decl{
		fixture.Root("Party",
			decl.FieldRef{Name: "leader", Type: "Class", Alias: "LeaderClass"},
			decl.FieldRef{Name: "follower", Type: "Class", Alias: "FollowerClass"}),
		fixture.Decision("Class", fixture.Tag("Bard"), fixture.Tag("Paladin")),
	})
	f := parse(t, src)
	names := declared(f)

	assert.True(t, names["LeaderClassPicker"])
	assert.True(t, names["FollowerClassPicker"])
	assert.Equal(t, 1, strings.Count(src, "type ClassOption int"), "one enum per decision type")
	assert.Contains(t, src, "\tp.w.callbacks.PickFollowerClass(partyFollowerClassPicker{w: p.w})\n")
}

func TestGenerateFile_Doc(t *testing.T) {
	decls := fixture.Sheet()
	decls[2].Doc = "Class is the adventuring class.\n\nPicked last."
	src := generate(t, decls)
	parse(t, src)
	assert.Contains(t, src, "// Class is the adventuring class.\n//\n// Picked last.\ntype Class interface {")
}

func TestGenerateFile_NilSchema(t *testing.T) {
	_, err := NewGenerator().GenerateFile(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmit))
}

func TestGenerateFile_DefaultVersion(t *testing.T) {
	out, err := NewGenerator().GenerateFile(compile(t, fixture.Sheet()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "// Code generated by sculpt v"))
}
