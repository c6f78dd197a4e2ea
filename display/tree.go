package display

import (
	"io"

	"github.com/ddddddO/gtree"

	"github.com/teranos/sculpt/resolve"
	"github.com/teranos/sculpt/sym"
)

// DecisionTree renders the sites of a resolution in the order a driver meets
// them. Each variant names the decision its choice hands over to.
//
//	Sheet
//	├── race: Race
//	│   ├── Dwarf → DwarfSubrace
//	│   │   ├── subrace: DwarfSubrace
//	│   │   │   ├── HillDwarf → ToolProficiency
//	...
func DecisionTree(w io.Writer, res *resolve.Resolution) error {
	root := gtree.NewRoot(res.Graph.Root)
	addScope(root, res, res.Root)
	return gtree.OutputFromRoot(w, root)
}

func addScope(parent *gtree.Node, res *resolve.Resolution, sc *resolve.Scope) {
	for _, e := range sc.Entries {
		label := e.Field.Label() + ": " + e.Field.Type
		switch e.Kind {
		case resolve.Leaf:
			parent.Add(label + " " + sym.Fixed)

		case resolve.Nested:
			addScope(parent.Add(label), res, e.Sub)

		case resolve.Decision:
			if e.Site.Name != e.Site.Type {
				label += " " + sym.Alias + " " + e.Site.Name
			}
			site := parent.Add(label)
			for _, l := range res.Links(e.Site) {
				next := sym.End
				if l.Next != nil {
					next = l.Next.Name
				}
				tag := site.Add(l.Tag + " " + sym.Next + " " + next)
				for _, vs := range e.Variants {
					if vs.Variant == l.Tag {
						addScope(tag, res, vs)
					}
				}
			}
		}
	}
}
