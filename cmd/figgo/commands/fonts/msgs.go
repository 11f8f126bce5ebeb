package fonts

// Message constants
const (
	MsgShort = "List and inspect available fonts"
	MsgLong  = `Fonts lists every available font: the bundled figlet catalog plus any
custom .flf fonts installed in the font directory. Filters can be
combined; --sample renders text in every matched font.`

	MsgExample = `  # List all fonts
  figgo fonts

  # Fonts suited for big headers, previewed
  figgo fonts --recommend headers --sample HI

  # Narrow down by name
  figgo fonts --search 3d

  # Inspect one font
  figgo fonts info slant

  # Install a custom figlet font
  figgo fonts add ./myfont.flf`

	MsgInfoShort       = "Show details and a sample for one font"
	MsgAddShort        = "Install a custom .flf font"
	MsgAddLong         = `Add copies a figlet .flf font file into the custom font directory so it becomes available by name.`
	MsgCategoriesShort = "List font categories and use cases"

	MsgFontAddedFormat = "Installed font from %s\n"

	MsgErrUnknownCategory = "unknown category %q (run 'figgo fonts categories')"
	MsgErrUnknownUseCase  = "unknown use case %q (run 'figgo fonts categories')"
)
