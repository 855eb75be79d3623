package encode

import (
	"github.com/ProjectUnified/CraftItem/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Type: ir.CompoundType, Attr: FieldColor}] = color.RGB(128, 168, 196).SprintfFunc()

	numeric := color.RGB(128, 216, 236).SprintfFunc()
	for _, t := range []ir.Type{
		ir.ByteType, ir.ShortType, ir.IntType, ir.LongType,
		ir.FloatType, ir.DoubleType,
	} {
		colors.Map[Colorable{Type: t, Attr: ValueColor}] = numeric
	}
	colors.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] = color.CyanString
	colors.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = color.GreenString
	return colors
}

func (cs *Colors) Color(t ir.Type, attr ColorAttr, v string) string {
	f, ok := cs.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = cs.Default
	}
	if f == nil {
		return v
	}
	return f("%s", v)
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}
