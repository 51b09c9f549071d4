package conversation

import (
	"context"
	"strings"
)

// Command is a recognized chat command that bypasses answer handling.
type Command string

const (
	CommandNone    Command = "none"
	CommandRestart Command = "restart"
	CommandHelp    Command = "help"
)

// StaticCommandParser recognizes commands by exact keyword match across
// the supported input languages.
type StaticCommandParser struct {
	RestartKeywords []string
	HelpKeywords    []string
}

func NewStaticCommandParser() *StaticCommandParser {
	return &StaticCommandParser{
		RestartKeywords: []string{
			"restart", "neustart", "neu starten", "von vorne",
			"yeniden başlat", "od nowa", "спочатку", "reiniciar", "recommencer",
		},
		HelpKeywords: []string{
			"help", "hilfe", "yardım", "مساعدة", "pomoc",
			"допомога", "ayuda", "aide", "?",
		},
	}
}

func (p *StaticCommandParser) ParseCommand(_ context.Context, input string) Command {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, keyword := range p.RestartKeywords {
		if normalized == keyword {
			return CommandRestart
		}
	}
	for _, keyword := range p.HelpKeywords {
		if normalized == keyword {
			return CommandHelp
		}
	}
	return CommandNone
}
