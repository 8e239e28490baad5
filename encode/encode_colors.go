package encode

import "github.com/fatih/color"

type colorAttr int

const (
	fieldColor colorAttr = iota
	stringColor
	numberColor
	boolColor
	nullColor
)

type Colors struct {
	Map map[colorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Map: map[colorAttr]func(string, ...any) string{
			fieldColor:  color.RGB(128, 168, 196).SprintfFunc(),
			stringColor: color.GreenString,
			numberColor: color.RGB(128, 216, 236).SprintfFunc(),
			boolColor:   color.CyanString,
			nullColor:   color.RGB(168, 0, 196).SprintfFunc(),
		},
	}
}

func (es *EncState) color(attr colorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	f := es.colors.Map[attr]
	if f == nil {
		return s
	}
	return f("%s", s)
}
