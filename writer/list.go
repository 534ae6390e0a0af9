package writer

import (
	"strconv"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	ansiterm "github.com/tarleb/ansi-terminal-writer"
)

// numeral formats a 1-based item number in the given style. Alphabetic
// styles are single characters and wrap after 26 instead of growing
// digits; the wrap is deliberate, matching the established output.
func numeral(n int, style ansiterm.ListStyle) string {
	switch style {
	case ansiterm.LowerAlpha:
		return string(rune('a' + (n-1)%26))
	case ansiterm.UpperAlpha:
		return string(rune('A' + (n-1)%26))
	case ansiterm.LowerRoman:
		return strings.ToLower(roman(n))
	case ansiterm.UpperRoman:
		return roman(n)
	default:
		// Decimal, DefaultStyle, and Example all count in base 10.
		return strconv.Itoa(n)
	}
}

// delimit applies the list delimiter format: "N.", "N)", or "(N)".
// DefaultDelim formats like Period.
func delimit(numeral string, d ansiterm.ListDelim) string {
	switch d {
	case ansiterm.OneParen:
		return numeral + ")"
	case ansiterm.TwoParens:
		return "(" + numeral + ")"
	default:
		return numeral + "."
	}
}

// numeralWidth is the column shared by all items of a list: 4 once the
// highest item number passes 9, otherwise 5 for roman styles and 3 for
// the rest. The tier is computed from the maximum item number alone, so
// roman numerals on lists of more than nine items can overflow their
// column; that mismatch is part of the established output.
func numeralWidth(maxNum int, style ansiterm.ListStyle) int {
	if maxNum > 9 {
		return 4
	}
	if style == ansiterm.LowerRoman || style == ansiterm.UpperRoman {
		return 5
	}
	return 3
}

// itemPrefix pads a delimited numeral with trailing spaces to fill the
// column, keeping at least one space before the item content.
func itemPrefix(delimited string, width int) string {
	pad := width - runewidth.StringWidth(delimited)
	if pad < 1 {
		pad = 1
	}
	return delimited + strings.Repeat(" ", pad)
}

var romanDigits = []struct {
	value int
	glyph string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	if n < 1 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			sb.WriteString(d.glyph)
			n -= d.value
		}
	}
	return sb.String()
}

// isTight reports whether a list renders without blank lines between
// items: every item is a single Plain block, optionally followed by one
// nested list.
func isTight(items [][]ansiterm.Block) bool {
	for _, item := range items {
		switch len(item) {
		case 1:
			if _, ok := item[0].(*ansiterm.Plain); !ok {
				return false
			}
		case 2:
			if _, ok := item[0].(*ansiterm.Plain); !ok {
				return false
			}
			switch item[1].(type) {
			case *ansiterm.BulletList, *ansiterm.OrderedList:
			default:
				return false
			}
		default:
			return false
		}
	}
	return true
}
