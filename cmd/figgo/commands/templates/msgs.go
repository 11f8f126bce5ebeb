package templates

// Message constants
const (
	MsgShort = "List, preview, and save style templates"
	MsgLong  = `Templates are named style bundles. Built-in templates ship with figgo;
your own are stored as TOML files in the template directory. A user
template with the same name as a built-in shadows it.`

	MsgExample = `  # List all templates
  figgo templates

  # Preview one
  figgo templates show retro

  # Save your current favorite flags as a template
  figgo templates save mystyle --font slant --border double --color cyan`

	MsgShowShort = "Render a sample banner with a template"
	MsgSaveShort = "Save a style as a user template"
	MsgSaveLong  = `Save resolves the style flags exactly like generate does (including
--template and --scheme as starting points) and writes the result as a
user template.`
	MsgSaveExample = `  # Plain flags
  figgo templates save mystyle --font doom --padding 1

  # Derive from a built-in, then tweak
  figgo templates save darker --template neon --shadow-color bright_black`

	MsgSavedFormat = "Saved template %q to %s\n"
)
