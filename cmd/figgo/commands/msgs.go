package commands

// Message constants
const (
	MsgRootShort = "Stylized ASCII banners for terminals, docs, and images"
	MsgRootLong  = `figgo renders text as stylized ASCII banners: pick a font, add colors,
gradients, borders, shadows, and padding, then print to the terminal or
export to text, HTML, PNG, SVG, JSON, or YAML.

Styles can be saved as templates and reused, and 'figgo interactive'
builds a banner step by step.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(figgo completion bash)
  # To load completions for each session, execute once:
  $ figgo completion bash > /etc/bash_completion.d/figgo

Zsh:
  $ figgo completion zsh > "${fpath[1]}/_figgo"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ figgo completion fish | source
  # To load completions for each session, execute once:
  $ figgo completion fish > ~/.config/fish/completions/figgo.fish

PowerShell:
  PS> figgo completion powershell | Out-String | Invoke-Expression`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
