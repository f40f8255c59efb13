package discord

import (
	"github.com/bwmarrin/discordgo"

	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
	pkgdiscord "tellobot/pkg/discord"
)

// argsFromOptions maps the subcommand options to block arguments. An option
// the user left out stays absent so the block default applies.
func argsFromOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) domain.Args {
	args := domain.Args{}
	if o := pkgdiscord.FindOption(opts, optionX); o != nil && o.Value != nil {
		args[entities.ParamX] = o.Value
	}
	return args
}
