package discord

import (
	"github.com/bwmarrin/discordgo"

	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
	"tellobot/internal/ports/input"
	"tellobot/internal/ports/output"
)

const (
	CommandTello  = "tello"
	CommandLocale = "tello-locale"
	CommandBlocks = "tello-blocks"

	optionX      = "x"
	optionLocale = "locale"

	// Discord caps names and descriptions.
	maxDescription = 100
)

// discordLocales maps block locales to the Discord locales that can show them.
// ja-Hira has no Discord counterpart and is only reachable via /tello-locale.
var discordLocales = map[domain.Locale]discordgo.Locale{
	domain.LocaleJapanese: discordgo.Japanese,
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxDescription {
		return s
	}
	return string(r[:maxDescription-1]) + "…"
}

// BuildCommands derives the slash commands from the catalog: one /tello
// subcommand per block, described with the block text in every locale
// Discord can display.
func BuildCommands(catalog input.CatalogUseCase, t output.T) []*discordgo.ApplicationCommand {
	base := catalog.BuildCatalog(string(domain.DefaultLocale))
	localized := make(map[discordgo.Locale]entities.Catalog, len(discordLocales))
	for l, dl := range discordLocales {
		localized[dl] = catalog.BuildCatalog(string(l))
	}

	subcommands := make([]*discordgo.ApplicationCommandOption, 0, len(base.Blocks))
	for _, b := range base.Blocks {
		sub := &discordgo.ApplicationCommandOption{
			Type:                     discordgo.ApplicationCommandOptionSubCommand,
			Name:                     b.Opcode,
			Description:              truncate(b.Text),
			DescriptionLocalizations: map[discordgo.Locale]string{},
		}
		for dl, c := range localized {
			if lb, ok := c.Block(b.Opcode); ok {
				sub.DescriptionLocalizations[dl] = truncate(lb.Text)
			}
		}
		if p, ok := b.Arguments[entities.ParamX]; ok {
			sub.Options = []*discordgo.ApplicationCommandOption{numberOption(p, t)}
		}
		subcommands = append(subcommands, sub)
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     CommandTello,
			Description:              t.T(string(domain.DefaultLocale), "command.tello.description", nil),
			DescriptionLocalizations: localizations(t, "command.tello.description", nil),
			Options:                  subcommands,
		},
		{
			Name:                     CommandLocale,
			Description:              t.T(string(domain.DefaultLocale), "command.locale.description", nil),
			DescriptionLocalizations: localizations(t, "command.locale.description", nil),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionLocale,
					Description: t.T(string(domain.DefaultLocale), "command.locale.option", nil),
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "English", Value: string(domain.LocaleEnglish)},
						{Name: "日本語", Value: string(domain.LocaleJapanese)},
						{Name: "にほんご", Value: string(domain.LocaleJapaneseHiragana)},
					},
				},
			},
		},
		{
			Name:                     CommandBlocks,
			Description:              t.T(string(domain.DefaultLocale), "command.blocks.description", nil),
			DescriptionLocalizations: localizations(t, "command.blocks.description", nil),
		},
	}
}

func numberOption(p entities.Parameter, t output.T) *discordgo.ApplicationCommandOption {
	data := map[string]any{"Default": domain.FormatNumber(p.Default)}
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionNumber,
		Name:        optionX,
		Description: truncate(t.T(string(domain.DefaultLocale), "option.x.description", data)),
		Required:    false,
	}
	if l := localizations(t, "option.x.description", data); l != nil {
		opt.DescriptionLocalizations = *l
	}
	return opt
}

func localizations(t output.T, key string, data map[string]any) *map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string, len(discordLocales))
	for l, dl := range discordLocales {
		out[dl] = truncate(t.T(string(l), key, data))
	}
	return &out
}
