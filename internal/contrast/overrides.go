package contrast

import "github.com/thisguymartin/stylebook/internal/style"

var iosOverrides = Table{
	"glassmorphism": {
		Reason: "Translucent text over system materials loses contrast once iOS applies vibrancy.",
		Colors: map[style.Slot]string{
			style.SlotTextSecondary: "#E4E2F5",
			style.SlotTextTertiary:  "#C3C0E0",
			style.SlotBorder:        "#8E88C9",
		},
		Note: "Use .ultraThinMaterial for cards instead of rgba fills.",
	},
	"neomorphism": {
		Reason: "Shadow-only edges disappear in Dark Mode and under Increase Contrast.",
		Colors: map[style.Slot]string{
			style.SlotBorder:        "#B8BEC7",
			style.SlotTextSecondary: "#4A5260",
		},
	},
	"claymorphism": {
		Reason: "Controls need a visible edge without the inner shadows.",
		Colors: map[style.Slot]string{
			style.SlotBorder:        "#C9B8F5",
			style.SlotTextSecondary: "#524C78",
		},
	},
	"terminal": {
		Reason: "List rows require hairline separators.",
		Colors: map[style.Slot]string{
			style.SlotBorder: "#0F5C22",
		},
		Note: "Keep the scanline overlay off on ProMotion displays.",
	},
	"soft-pastel": {
		Reason: "Pastel secondary text falls below AA on the cream background.",
		Colors: map[style.Slot]string{
			style.SlotTextSecondary: "#6B6377",
			style.SlotTextTertiary:  "#8A8296",
		},
	},
	"kawaii": {
		Reason: "Secondary text is too light for Dynamic Type at small sizes.",
		Colors: map[style.Slot]string{
			style.SlotTextSecondary: "#6E4E68",
		},
	},
	"vaporwave": {
		Reason: "Lavender secondary text is hard to read against the gradient.",
		Colors: map[style.Slot]string{
			style.SlotTextSecondary: "#DCCFF2",
		},
	},
}

// IOSOverrides returns a copy of the iOS override table.
func IOSOverrides() Table {
	out := make(Table, len(iosOverrides))
	for id, o := range iosOverrides {
		colors := make(map[style.Slot]string, len(o.Colors))
		for k, v := range o.Colors {
			colors[k] = v
		}
		o.Colors = colors
		out[id] = o
	}
	return out
}
