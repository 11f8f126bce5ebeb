package docs

// Message constants
const (
	MsgShort = "Browse the built-in documentation topics"
	MsgLong  = `Docs lists the built-in documentation topics, or renders one of them.
Topics cover styling, fonts, templates, and export formats in more
depth than the per-command help.`
)
