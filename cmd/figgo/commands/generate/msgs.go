package generate

// Message constants
const (
	MsgShort = "Render text as an ASCII banner"
	MsgLong  = `Generate renders text as a stylized ASCII banner. Styling is layered:
configuration defaults first, then the --template, then the --scheme,
and finally any individual flag you set.

Without --output the banner is printed to stdout, colored when the
terminal supports it. With --output the banner is written to a file in
the format detected from the extension (override with --format).`

	MsgExample = `  # Plain banner with the default font
  figgo generate "Hello"

  # Bordered, padded, gradient-colored banner
  figgo generate --font slant --border double --padding 1 --color gradient:red-yellow "Release"

  # Start from a template, tweak one thing
  figgo generate --template retro --shadow "Arcade"

  # Export to files
  figgo generate -o banner.png "Logo"
  figgo generate -o banner.svg --scheme ocean "Waves"`

	MsgExportedFormat = "Exported %s banner to %s\n"
)
