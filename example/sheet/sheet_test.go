package sheet_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sculpt/example/sheet"
	"github.com/teranos/sculpt/loader"
	"github.com/teranos/sculpt/pipeline"
	"github.com/teranos/sculpt/typegen"
	"github.com/teranos/sculpt/version"
	"github.com/teranos/sculpt/wizard"
)

// recorder keeps the first option everywhere except where a choice is set,
// and records the order in which it is asked
type recorder struct {
	sheet.DefaultSheetCallbacks

	race    sheet.RaceOption
	subrace sheet.ElfSubraceOption
	asked   []string
}

func (r *recorder) PickRace(p sheet.RacePicker) {
	r.asked = append(r.asked, "Race")
	p.Fulfill(r.race)
}

func (r *recorder) PickDwarfSubrace(p sheet.DwarfSubracePicker) {
	r.asked = append(r.asked, "DwarfSubrace")
	r.DefaultSheetCallbacks.PickDwarfSubrace(p)
}

func (r *recorder) PickToolProficiency(p sheet.ToolProficiencyPicker) {
	r.asked = append(r.asked, "ToolProficiency")
	r.DefaultSheetCallbacks.PickToolProficiency(p)
}

func (r *recorder) PickElfSubrace(p sheet.ElfSubracePicker) {
	r.asked = append(r.asked, "ElfSubrace")
	p.Fulfill(r.subrace)
}

func (r *recorder) PickBaseCantrip(p sheet.BaseCantripPicker) {
	r.asked = append(r.asked, "BaseCantrip")
	r.DefaultSheetCallbacks.PickBaseCantrip(p)
}

func (r *recorder) PickClass(p sheet.ClassPicker) {
	r.asked = append(r.asked, "Class")
	r.DefaultSheetCallbacks.PickClass(p)
}

func TestBuildSheet_Defaults(t *testing.T) {
	got := sheet.BuildSheet(sheet.DefaultSheetCallbacks{})

	assert.Equal(t, sheet.Sheet{
		Race:  sheet.RaceDwarf{Subrace: sheet.DwarfSubraceHillDwarf{}, Tool: sheet.ToolProficiencyHammer{}},
		Class: sheet.ClassBard{},
	}, got)
	assert.Equal(t, "Sheet{race: Dwarf{subrace: HillDwarf, tool: Hammer}, class: Bard}", got.String())
}

func TestBuildSheet_Order(t *testing.T) {
	tests := []struct {
		name    string
		race    sheet.RaceOption
		subrace sheet.ElfSubraceOption
		want    string
		asked   []string
	}{
		{
			name:  "dwarf",
			race:  sheet.RaceOptionDwarf,
			want:  "Sheet{race: Dwarf{subrace: HillDwarf, tool: Hammer}, class: Bard}",
			asked: []string{"Race", "DwarfSubrace", "ToolProficiency", "Class"},
		},
		{
			name:    "high elf",
			race:    sheet.RaceOptionElf,
			subrace: sheet.ElfSubraceOptionHighElf,
			want:    "Sheet{race: Elf{subrace: HighElf}, class: Bard}",
			asked:   []string{"Race", "ElfSubrace", "Class"},
		},
		{
			name:    "wood elf",
			race:    sheet.RaceOptionElf,
			subrace: sheet.ElfSubraceOptionWoodElf,
			want:    "Sheet{race: Elf{subrace: WoodElf(Cantrip{cantrip: Prestidigitation})}, class: Bard}",
			asked:   []string{"Race", "ElfSubrace", "BaseCantrip", "Class"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{race: tt.race, subrace: tt.subrace}
			got := sheet.BuildSheet(r)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.asked, r.asked)
		})
	}
}

func TestBuildSheet_WoodElfValue(t *testing.T) {
	got := sheet.BuildSheet(&recorder{race: sheet.RaceOptionElf, subrace: sheet.ElfSubraceOptionWoodElf})

	assert.Equal(t, sheet.RaceElf{
		Subrace: sheet.ElfSubraceWoodElf{Cantrip: sheet.Cantrip{Cantrip: sheet.BaseCantripPrestidigitation{}}},
	}, got.Race)
}

// lazy returns without fulfilling the class
type lazy struct{ sheet.DefaultSheetCallbacks }

func (lazy) PickClass(sheet.ClassPicker) {}

// eager fulfills the race twice
type eager struct{ sheet.DefaultSheetCallbacks }

func (eager) PickRace(p sheet.RacePicker) {
	p.Fulfill(sheet.RaceOptionDwarf)
	p.Fulfill(sheet.RaceOptionElf)
}

// wild fulfills with a value outside the enum
type wild struct{ sheet.DefaultSheetCallbacks }

func (wild) PickClass(p sheet.ClassPicker) { p.Fulfill(sheet.ClassOption(7)) }

func TestBuildSheet_Misuse(t *testing.T) {
	assert.PanicsWithValue(t, "sculpt: Class not fulfilled at class", func() {
		sheet.BuildSheet(lazy{})
	})
	assert.PanicsWithValue(t, "sculpt: Race fulfilled twice", func() {
		sheet.BuildSheet(eager{})
	})
	assert.PanicsWithValue(t, "sculpt: invalid ClassOption 7", func() {
		sheet.BuildSheet(wild{})
	})
}

func TestOptions(t *testing.T) {
	assert.Equal(t, []sheet.ElfSubraceOption{
		sheet.ElfSubraceOptionDarkElf, sheet.ElfSubraceOptionHighElf, sheet.ElfSubraceOptionWoodElf,
	}, sheet.ElfSubraceOptions())
	assert.Equal(t, "WoodElf", sheet.ElfSubraceOptionWoodElf.String())
	assert.Equal(t, "ElfSubraceOption(9)", sheet.ElfSubraceOption(9).String())

	assert.Equal(t, sheet.ElfSubraceHighElf{}, sheet.ElfSubraceOptionHighElf.Value())
	assert.PanicsWithValue(t, "sculpt: cannot turn WoodElf into ElfSubrace without its fields", func() {
		sheet.ElfSubraceOptionWoodElf.Value()
	})
}

// The generated wizard and the interpreter agree on every branch
func TestMatchesInterpreter(t *testing.T) {
	file, err := loader.LoadFile("sheet.yaml")
	require.NoError(t, err)
	r, err := pipeline.Compile(file, pipeline.Options{})
	require.NoError(t, err)

	for _, race := range sheet.RaceOptions() {
		for _, subrace := range sheet.ElfSubraceOptions() {
			rec := &recorder{race: race, subrace: subrace}
			got := sheet.BuildSheet(rec)

			trace := wizard.NewTrace(wizard.Overrides{Choices: map[string]string{
				"Race":       race.String(),
				"ElfSubrace": subrace.String(),
			}})
			v, err := wizard.Run(r.Schema, trace)
			require.NoError(t, err)

			assert.Equal(t, v.String(), got.String())
			assert.Equal(t, trace.Sites(), rec.asked)
		}
	}
}

func TestGeneratedFileUpToDate(t *testing.T) {
	file, err := loader.LoadFile("sheet.yaml")
	require.NoError(t, err)
	r, err := pipeline.Generate(file, pipeline.Options{Format: true})
	require.NoError(t, err)

	existing, err := os.ReadFile("sheet_sculpt.go")
	require.NoError(t, err)

	check, err := typegen.Compare(r.Output, existing, version.Semver())
	require.NoError(t, err)
	assert.True(t, check.UpToDate, "sheet_sculpt.go is stale; run go generate ./example/sheet")
}
