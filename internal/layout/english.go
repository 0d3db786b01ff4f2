package layout

// EnglishProvider returns the standard English (QWERTY) input sets.
func EnglishProvider() StaticProvider {
	return StaticProvider{
		Lang: "en",
		Alphabetic: InputSet{Rows: []Row{
			NewRow("qwertyuiop"),
			NewRow("asdfghjkl"),
			NewRow("zxcvbnm"),
		}},
		Numeric: InputSet{Rows: []Row{
			NewRow("1234567890"),
			append(NewRow(`-/:;()`), NewItemWithHidden("$", "€"), NewItem("&"), NewItem("@"), NewItem(`"`)),
			NewRow(`.,?!'`),
		}},
		Symbolic: InputSet{Rows: []Row{
			NewRow(`[]{}#%^*+=`),
			NewRow(`_\|~<>$€£·`),
			NewRow(`.,?!'`),
		}},
	}
}

// GermanProvider returns the German (QWERTZ) input sets, derived from
// the English sets with the row engine: z and y swap places and the
// umlaut keys extend the first two rows.
func GermanProvider() StaticProvider {
	en := EnglishProvider()

	alpha := en.Alphabetic
	alpha = alpha.ReplaceInRow(0, NewItem("y"), NewItem("z"))
	alpha = alpha.ReplaceInRow(2, NewItem("z"), NewItem("y"))
	alpha = alpha.InsertAfterInRow(0, NewItem("ü"), NewItem("p"))
	alpha = alpha.InsertAfterInRow(1, NewItem("ö"), NewItem("l"))
	alpha = alpha.InsertAfterInRow(1, NewItem("ä"), NewItem("ö"))

	numeric := en.Numeric.ReplaceInAll(NewItemWithHidden("$", "€"), NewItemWithHidden("€", "$"))

	return StaticProvider{
		Lang:       "de",
		Alphabetic: alpha,
		Numeric:    numeric,
		Symbolic:   en.Symbolic,
	}
}

// StandardRegistry returns a registry with the built-in providers,
// falling back to English.
func StandardRegistry() *Registry {
	r := NewRegistry(EnglishProvider())
	r.Register(GermanProvider())
	return r
}
