package table

import "regexp"

// labelUnitsRE matches a "name(units)" label, capturing the name and
// the parenthesized units suffix.
var labelUnitsRE = regexp.MustCompile(`^(.*)\((.*)\)$`)

// DeriveLabel produces a display label cell for an AST node.
//
// The node's name is the fallback text. If the node carries a Label
// attribute of the form "name(units)" it is split into text and units;
// any other non-empty Label is used verbatim as the text. An explicit
// Units attribute always wins over units parsed from the label. Absent
// data is not an error: derivation degrades to the bare node name.
func DeriveLabel(n Noder) Cell {
	text := n.Name()
	units := ""

	if d := n.NodeData(); d != nil {
		if d.Label != "" {
			if m := labelUnitsRE.FindStringSubmatch(d.Label); m != nil {
				text, units = m[1], m[2]
			} else {
				text = d.Label
			}
		}
		if d.Units != "" {
			units = d.Units
		}
	}

	return Cell{Value: text, Units: units}
}
