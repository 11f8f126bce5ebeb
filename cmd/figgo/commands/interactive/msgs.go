package interactive

// Message constants
const (
	MsgShort = "Build a banner through interactive prompts"
	MsgLong  = `Interactive walks you through the banner options one prompt at a
time, renders the result, and optionally saves the style as a template
for later use with --template.`

	MsgPromptText         = "Banner text"
	MsgPromptFont         = "Font"
	MsgPromptBorder       = "Border style"
	MsgPromptScheme       = "Color scheme"
	MsgPromptShadow       = "Add a drop shadow?"
	MsgPromptSave         = "Save this style as a template?"
	MsgPromptTemplateName = "Template name"

	MsgSavedFormat = "Saved template %q to %s\n"
)
