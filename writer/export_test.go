package writer

// Internal numbering and spacing helpers exposed for tests.
var (
	Numeral           = numeral
	Delimit           = delimit
	NumeralWidth      = numeralWidth
	ItemPrefix        = itemPrefix
	Roman             = roman
	IsTight           = isTight
	SuperscriptDigits = superscriptDigits
)
