package discord

import (
	"context"

	"go.uber.org/zap"

	"tellobot/internal/domain"
	"tellobot/internal/ports/input"
	"tellobot/internal/ports/output"
	pkgdiscord "tellobot/pkg/discord"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	catalogUseCase  input.CatalogUseCase
	dispatchUseCase input.DispatchUseCase
	localeUseCase   input.LocaleUseCase
	translator      output.T
	logger          *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	catalogUseCase input.CatalogUseCase,
	dispatchUseCase input.DispatchUseCase,
	localeUseCase input.LocaleUseCase,
	translator output.T,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		catalogUseCase:  catalogUseCase,
		dispatchUseCase: dispatchUseCase,
		localeUseCase:   localeUseCase,
		translator:      translator,
		logger:          logger,
	}
}

// runBlock invokes one block and renders the reply shown to the user.
func (h *Handler) runBlock(locale, opcode string, args domain.Args) string {
	cmd, err := h.dispatchUseCase.Invoke(opcode, args)
	if err != nil {
		h.logger.Info("block rejected", zap.String("opcode", opcode), zap.Error(err))
		return pkgdiscord.DomainErrorMessage(h.translator, locale, err)
	}

	block, _ := h.catalogUseCase.BuildCatalog(locale).Block(opcode)
	if cmd == "" {
		return h.translator.T(locale, "reply.connect", map[string]any{"Block": block.Text})
	}
	return h.translator.T(locale, "reply.sent", map[string]any{"Block": block.Text, "Command": cmd})
}

// setLocale stores the guild locale and renders the confirmation in the new
// locale, or the error in the current one.
func (h *Handler) setLocale(ctx context.Context, guildID, current, raw string) string {
	if guildID == "" {
		return h.translator.T(current, "error.generic", nil)
	}
	l, err := h.localeUseCase.SetGuildLocale(ctx, guildID, raw)
	if err != nil {
		h.logger.Warn("set guild locale", zap.String("guild_id", guildID), zap.String("locale", raw), zap.Error(err))
		return pkgdiscord.DomainErrorMessage(h.translator, current, err)
	}
	return h.translator.T(string(l), "reply.locale_set", map[string]any{"Locale": string(l)})
}
