package input

import "tellobot/internal/domain/entities"

type CatalogUseCase interface {
	BuildCatalog(locale string) entities.Catalog
}
