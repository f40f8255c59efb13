package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
)

const embedColor = 0x5865F2

func formatBlockValue(b entities.Block) string {
	var sb strings.Builder
	sb.WriteString(b.Text)
	if p, ok := b.Arguments[entities.ParamX]; ok {
		sb.WriteString(fmt.Sprintf("\n`%s = %s`", p.Name, domain.FormatNumber(p.Default)))
	}
	return sb.String()
}

// BuildCatalogEmbed lists every block of the catalog, one field per block,
// in catalog order.
func BuildCatalogEmbed(c entities.Catalog, title string) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "/" + c.ID + " " + b.Opcode,
			Value:  formatBlockValue(b),
			Inline: true,
		})
	}
	return &discordgo.MessageEmbed{
		Title:  title,
		Color:  embedColor,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: c.Name + " • " + c.Locale},
	}
}
