package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "tellobot/pkg/discord"
)

func (h *Handler) interactionLocale(ctx context.Context, i *discordgo.InteractionCreate) string {
	return string(h.localeUseCase.LocaleFor(ctx, i.GuildID, string(i.Locale)))
}

// HandleTello runs the block named by the /tello subcommand.
func (h *Handler) HandleTello(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.interactionLocale(ctx, i)

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 || data.Options[0] == nil {
		h.respondEphemeral(s, i.Interaction, h.translator.T(locale, "error.unknown_operation", nil))
		return
	}
	sub := data.Options[0]
	h.respondEphemeral(s, i.Interaction, h.runBlock(locale, sub.Name, argsFromOptions(sub.Options)))
}

// HandleLocale stores the block language for the guild.
func (h *Handler) HandleLocale(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	current := h.interactionLocale(ctx, i)
	raw := pkgdiscord.StringOption(i.ApplicationCommandData().Options, optionLocale)
	h.respondEphemeral(s, i.Interaction, h.setLocale(ctx, i.GuildID, current, raw))
}

// HandleBlocks shows the localized block list.
func (h *Handler) HandleBlocks(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.interactionLocale(ctx, i)
	catalog := h.catalogUseCase.BuildCatalog(locale)
	embed := pkgdiscord.BuildCatalogEmbed(catalog, h.translator.T(locale, "reply.blocks_title", nil))
	h.respondEmbed(s, i.Interaction, embed)
}
