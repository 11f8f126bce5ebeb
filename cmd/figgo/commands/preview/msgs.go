package preview

// Message constants
const (
	MsgShort = "Preview text in several fonts side by side"
	MsgLong  = `Preview renders the same text in a set of fonts so you can compare
them before committing to one. By default the first 10 fonts are
shown; narrow the set with --font or --category.`

	MsgExample = `  # Compare the default selection
  figgo preview "Logo"

  # Compare two specific fonts
  figgo preview --font slant --font doom "Logo"

  # Everything in the 3d category
  figgo preview --category 3d --limit 0 "Logo"`

	MsgErrUnknownCategory = "unknown category %q (run 'figgo fonts categories')"
)
