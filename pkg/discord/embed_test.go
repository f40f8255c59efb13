package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tellobot/internal/domain/entities"
)

func TestBuildCatalogEmbed(t *testing.T) {
	c := entities.Catalog{
		ID:     "tello",
		Name:   "Tello",
		Locale: "ja",
		Blocks: []entities.Block{
			{Opcode: "land", Text: "着陸する", Kind: entities.BlockTypeCommand},
			{Opcode: "cw", Text: "[X] 度回転する", Kind: entities.BlockTypeCommand, Arguments: map[string]entities.Parameter{
				"X": {Name: "X", Type: "number", Default: 90},
			}},
		},
	}

	embed := BuildCatalogEmbed(c, "Tello のブロック")

	assert.Equal(t, "Tello のブロック", embed.Title)
	assert.Equal(t, "Tello • ja", embed.Footer.Text)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "/tello land", embed.Fields[0].Name)
	assert.Equal(t, "着陸する", embed.Fields[0].Value)
	assert.Equal(t, "/tello cw", embed.Fields[1].Name)
	assert.Equal(t, "[X] 度回転する\n`X = 90`", embed.Fields[1].Value)
}
