package application

import (
	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
	"tellobot/internal/ports/input"
	"tellobot/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

type CatalogService struct {
	translator output.T
}

func NewCatalogService(translator output.T) *CatalogService {
	return &CatalogService{translator: translator}
}

// BlockMessageID is the translation key of a block's display text.
func BlockMessageID(opcode string) string {
	return "block." + opcode
}

// BuildCatalog lists every block with its text in locale. Locales other than
// ja and ja-Hira render English, and a block missing from a locale's table
// renders its English text.
func (s *CatalogService) BuildCatalog(locale string) entities.Catalog {
	loc := domain.ResolveLocale(locale)

	ops := entities.Operations()
	blocks := make([]entities.Block, 0, len(ops))
	for _, op := range ops {
		block := entities.Block{
			Opcode: op.ID,
			Text:   s.translator.T(string(loc), BlockMessageID(op.ID), nil),
			Kind:   entities.BlockTypeCommand,
		}
		if len(op.Parameters) > 0 {
			block.Arguments = make(map[string]entities.Parameter, len(op.Parameters))
			for _, p := range op.Parameters {
				block.Arguments[p.Name] = p
			}
		}
		blocks = append(blocks, block)
	}

	return entities.Catalog{
		ID:           entities.CatalogID,
		Name:         entities.CatalogName,
		Locale:       string(loc),
		MenuIconURI:  entities.MenuIconURI,
		BlockIconURI: entities.BlockIconURI,
		Blocks:       blocks,
	}
}
