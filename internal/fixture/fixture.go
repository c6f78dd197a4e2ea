// Package fixture provides declaration sets shared by tests across packages.
package fixture

import (
	"github.com/lithammer/dedent"

	"github.com/teranos/sculpt/decl"
)

// Product declares a product type, inferring its shape from the fields
func Product(name string, fields ...decl.FieldRef) decl.Decl {
	return decl.Decl{Name: name, Kind: decl.Product, Shape: decl.InferShape(fields), Fields: fields}
}

// Root declares the root product type
func Root(name string, fields ...decl.FieldRef) decl.Decl {
	d := Product(name, fields...)
	d.Root = true
	return d
}

// Decision declares a sum type whose variant the driver picks
func Decision(name string, variants ...decl.Variant) decl.Decl {
	return decl.Decl{Name: name, Kind: decl.Sum, Decision: true, Variants: variants}
}

// Sum declares a plain sum type
func Sum(name string, variants ...decl.Variant) decl.Decl {
	return decl.Decl{Name: name, Kind: decl.Sum, Variants: variants}
}

// Tag declares a variant, inferring its shape from the fields
func Tag(name string, fields ...decl.FieldRef) decl.Variant {
	return decl.Variant{Tag: name, Shape: decl.InferShape(fields), Fields: fields}
}

// Field references typ from a named field
func Field(name, typ string) decl.FieldRef {
	return decl.FieldRef{Name: name, Type: typ}
}

// Expand references typ from a named expandable field
func Expand(name, typ string) decl.FieldRef {
	return decl.FieldRef{Name: name, Type: typ, Expand: true}
}

// Sheet is the character sheet declaration set: a Race decision whose
// Elf branch hides a second decision behind an expandable payload, followed
// by an unexpanded Class decision.
func Sheet() []decl.Decl {
	return []decl.Decl{
		Root("Sheet", Expand("race", "Race"), Field("class", "Class")),
		Decision("Race",
			Tag("Dwarf", Field("subrace", "DwarfSubrace"), Field("tool", "ToolProficiency")),
			Tag("Elf", Expand("subrace", "ElfSubrace"))),
		Decision("Class", Tag("Bard"), Tag("Paladin")),
		Decision("DwarfSubrace", Tag("HillDwarf"), Tag("MountainDwarf")),
		Decision("ToolProficiency", Tag("Hammer"), Tag("Saw")),
		Decision("ElfSubrace", Tag("DarkElf"), Tag("HighElf"),
			Tag("WoodElf", decl.FieldRef{Type: "Cantrip", Expand: true})),
		Product("Cantrip", Field("cantrip", "BaseCantrip")),
		Decision("BaseCantrip", Tag("Prestidigitation"), Tag("Guidance")),
	}
}

// SheetFile wraps Sheet in a declaration set
func SheetFile() *decl.File {
	return &decl.File{Package: "sheet", Source: "sheet.yaml", Decls: Sheet()}
}

// SheetYAML is Sheet in the YAML declaration format
var SheetYAML = dedent.Dedent(`
	package: sheet
	types:
	  - name: Sheet
	    kind: product
	    root: true
	    fields:
	      - {name: race, type: Race, expand: true}
	      - {name: class, type: Class}
	  - name: Race
	    kind: sum
	    decision: true
	    variants:
	      - tag: Dwarf
	        fields:
	          - {name: subrace, type: DwarfSubrace}
	          - {name: tool, type: ToolProficiency}
	      - tag: Elf
	        fields:
	          - {name: subrace, type: ElfSubrace, expand: true}
	  - name: Class
	    kind: sum
	    decision: true
	    variants: [{tag: Bard}, {tag: Paladin}]
	  - name: DwarfSubrace
	    kind: sum
	    decision: true
	    variants: [{tag: HillDwarf}, {tag: MountainDwarf}]
	  - name: ToolProficiency
	    kind: sum
	    decision: true
	    variants: [{tag: Hammer}, {tag: Saw}]
	  - name: ElfSubrace
	    kind: sum
	    decision: true
	    variants:
	      - tag: DarkElf
	      - tag: HighElf
	      - tag: WoodElf
	        fields:
	          - {type: Cantrip, expand: true}
	  - name: Cantrip
	    kind: product
	    fields:
	      - {name: cantrip, type: BaseCantrip}
	  - name: BaseCantrip
	    kind: sum
	    decision: true
	    variants: [{tag: Prestidigitation}, {tag: Guidance}]
`)

// SheetTOML is Sheet in the TOML declaration format
var SheetTOML = dedent.Dedent(`
	package = "sheet"

	[[types]]
	name = "Sheet"
	kind = "product"
	root = true
	fields = [
	  {name = "race", type = "Race", expand = true},
	  {name = "class", type = "Class"},
	]

	[[types]]
	name = "Race"
	kind = "sum"
	decision = true
	variants = [
	  {tag = "Dwarf", fields = [{name = "subrace", type = "DwarfSubrace"}, {name = "tool", type = "ToolProficiency"}]},
	  {tag = "Elf", fields = [{name = "subrace", type = "ElfSubrace", expand = true}]},
	]

	[[types]]
	name = "Class"
	kind = "sum"
	decision = true
	variants = [{tag = "Bard"}, {tag = "Paladin"}]

	[[types]]
	name = "DwarfSubrace"
	kind = "sum"
	decision = true
	variants = [{tag = "HillDwarf"}, {tag = "MountainDwarf"}]

	[[types]]
	name = "ToolProficiency"
	kind = "sum"
	decision = true
	variants = [{tag = "Hammer"}, {tag = "Saw"}]

	[[types]]
	name = "ElfSubrace"
	kind = "sum"
	decision = true
	variants = [
	  {tag = "DarkElf"},
	  {tag = "HighElf"},
	  {tag = "WoodElf", fields = [{type = "Cantrip", expand = true}]},
	]

	[[types]]
	name = "Cantrip"
	kind = "product"
	fields = [{name = "cantrip", type = "BaseCantrip"}]

	[[types]]
	name = "BaseCantrip"
	kind = "sum"
	decision = true
	variants = [{tag = "Prestidigitation"}, {tag = "Guidance"}]
`)
