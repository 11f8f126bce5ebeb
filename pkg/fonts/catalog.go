package fonts

// bundled lists the figlet fonts shipped inside go-figure. The library
// embeds its fonts but does not export an enumeration, so the catalog is
// kept here and the custom font directory is merged in at runtime.
var bundled = []string{
	"3-d", "3x5", "5lineoblique", "acrobatic", "alligator", "alligator2",
	"alphabet", "avatar", "banner", "banner3-D", "banner3", "banner4",
	"barbwire", "basic", "bell", "big", "bigchief", "binary", "block",
	"bubble", "bulbhead", "calgphy2", "caligraphy", "catwalk", "chunky",
	"coinstak", "colossal", "computer", "contessa", "contrast", "cosmic",
	"cosmike", "cricket", "cursive", "cyberlarge", "cybermedium",
	"cybersmall", "diamond", "digital", "doh", "doom", "dotmatrix",
	"drpepper", "eftichess", "eftifont", "eftipiti", "eftirobot",
	"eftitalic", "eftiwall", "eftiwater", "epic", "fender", "fourtops",
	"fuzzy", "goofy", "gothic", "graffiti", "hollywood", "invita",
	"isometric1", "isometric2", "isometric3", "isometric4", "italic",
	"ivrit", "jazmine", "jerusalem", "katakana", "kban", "larry3d", "lcd",
	"lean", "letters", "linux", "lockergnome", "madrid", "marquee",
	"maxfour", "mike", "mini", "mirror", "mnemonic", "morse", "moscow",
	"nancyj-fancy", "nancyj-underlined", "nancyj", "nipples", "ntgreek",
	"o8", "ogre", "pawp", "peaks", "pebbles", "pepper", "poison", "puffy",
	"pyramid", "rectangles", "relief", "relief2", "rev", "roman", "rot13",
	"rounded", "rowancap", "rozzo", "runic", "runyc", "sblood", "script",
	"serifcap", "shadow", "short", "slant", "slide", "slscript", "small",
	"smisome1", "smkeyboard", "smscript", "smshadow", "smslant",
	"smtengwar", "speed", "stampatello", "standard", "starwars", "stellar",
	"stop", "straight", "tanja", "tengwar", "term", "thick", "thin",
	"threepoint", "ticks", "ticksslant", "tinker-toy", "tombstone", "trek",
	"tsalagi", "twopoint", "univers", "usaflag", "wavy", "weird",
}

// categories groups popular fonts by visual style
var categories = map[string][]string{
	"standard":   {"standard", "small", "big", "banner", "block"},
	"slanted":    {"slant", "lean", "italic", "script"},
	"3d":         {"3-d", "3x5", "isometric1", "isometric2", "isometric3", "isometric4"},
	"digital":    {"digital", "binary", "morse", "lcd"},
	"decorative": {"bubble", "bulbhead", "colossal", "epic", "graffiti"},
	"retro":      {"doom", "larry3d", "alligator", "cosmic"},
	"compact":    {"mini", "small", "smscript", "smshadow", "smslant"},
	"wide":       {"banner3", "colossal", "doh", "univers"},
	"artistic":   {"starwars", "trek", "weird", "gothic"},
}

// recommended suggests fonts for common use cases
var recommended = map[string][]string{
	"headers": {"banner", "big", "colossal", "epic"},
	"titles":  {"standard", "slant", "3-d", "doom"},
	"code":    {"digital", "small", "standard", "term"},
	"logos":   {"3-d", "larry3d", "isometric1", "block"},
	"fun":     {"starwars", "bubble", "bulbhead", "weird"},
}
