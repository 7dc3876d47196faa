package data

import _ "embed"

//go:embed help.en.template
var HelpTemplate string

//go:embed winner.en.template
var WinnerTemplate string
