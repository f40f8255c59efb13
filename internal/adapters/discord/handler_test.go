package discord

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tellobot/internal/application"
	"tellobot/internal/domain"
	"tellobot/internal/infrastructure/i18n"
	"tellobot/internal/ports/output/outputtest"
)

type testHandler struct {
	*Handler
	transport *outputtest.RecordingTransport
	settings  *outputtest.GuildSettingsRepository
}

func newTestHandler() testHandler {
	logger := zap.NewNop()
	tr := i18n.NewTranslator("en", logger)
	transport := &outputtest.RecordingTransport{}
	settings := outputtest.NewGuildSettingsRepository()
	h := NewHandler(
		application.NewCatalogService(tr),
		application.NewDispatcher(transport, logger),
		application.NewLocaleService(settings, domain.LocaleEnglish, logger),
		tr,
		logger,
	)
	return testHandler{Handler: h, transport: transport, settings: settings}
}

func TestRunBlock(t *testing.T) {
	h := newTestHandler()

	assert.Equal(t, "up [X] cm → `up 50`", h.runBlock("en", "up", domain.Args{}))
	assert.Equal(t, "rotate [X] degrees clockwise → `cw 45`", h.runBlock("en", "cw", domain.Args{"X": 45.0}))
	assert.Equal(t, "離陸する → `takeoff`", h.runBlock("ja", "takeoff", nil))
	assert.Equal(t, "せつぞくする → せつぞくをおねがいしました", h.runBlock("ja-Hira", "connect", nil))

	assert.Equal(t, []string{"up 50", "cw 45", "takeoff"}, h.transport.Sent())
	assert.Equal(t, 1, h.transport.Connects())
}

func TestRunBlockUnknownOperation(t *testing.T) {
	h := newTestHandler()

	assert.Equal(t, "Unknown block.", h.runBlock("en", "flip", nil))
	assert.Equal(t, "不明なブロックです。", h.runBlock("ja", "flip", nil))
	assert.Empty(t, h.transport.Sent())
}

func TestSetLocale(t *testing.T) {
	ctx := context.Background()
	h := newTestHandler()

	assert.Equal(t, "ブロックの言語を `ja` にしました。", h.setLocale(ctx, "1", "en", "ja"))
	assert.Equal(t, domain.LocaleJapanese, h.localeUseCase.LocaleFor(ctx, "1", "en-US"))

	assert.Equal(t, "Unsupported language. Use en, ja or ja-Hira.", h.setLocale(ctx, "1", "en", "fr"))
	assert.Equal(t, "Something went wrong.", h.setLocale(ctx, "", "en", "ja"), "no guild in DMs")
}

func TestArgsFromOptions(t *testing.T) {
	args := argsFromOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "x", Type: discordgo.ApplicationCommandOptionNumber, Value: 120.0},
	})
	assert.Equal(t, domain.Args{"X": 120.0}, args)

	args = argsFromOptions(nil)
	_, ok := args.Value("X")
	assert.False(t, ok, "absent option leaves X unset")
}

func TestBuildCommands(t *testing.T) {
	logger := zap.NewNop()
	tr := i18n.NewTranslator("en", logger)
	cmds := BuildCommands(application.NewCatalogService(tr), tr)

	require.Len(t, cmds, 3)
	tello := cmds[0]
	assert.Equal(t, CommandTello, tello.Name)
	require.Len(t, tello.Options, 11)

	up := tello.Options[3]
	assert.Equal(t, "up", up.Name)
	assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, up.Type)
	assert.Equal(t, "up [X] cm", up.Description)
	assert.Equal(t, "上に [X]cm 上がる", up.DescriptionLocalizations[discordgo.Japanese])
	require.Len(t, up.Options, 1)
	assert.Equal(t, "x", up.Options[0].Name)
	assert.Equal(t, discordgo.ApplicationCommandOptionNumber, up.Options[0].Type)
	assert.False(t, up.Options[0].Required)
	assert.Equal(t, "X (default 50)", up.Options[0].Description)

	ccw := tello.Options[10]
	assert.Equal(t, "X (default 90)", ccw.Options[0].Description)

	land := tello.Options[2]
	assert.Empty(t, land.Options)

	for _, sub := range tello.Options {
		assert.LessOrEqual(t, len([]rune(sub.Description)), maxDescription)
	}

	assert.Equal(t, CommandLocale, cmds[1].Name)
	require.Len(t, cmds[1].Options, 1)
	assert.Len(t, cmds[1].Options[0].Choices, 3)
	assert.Equal(t, CommandBlocks, cmds[2].Name)
}

func TestTruncate(t *testing.T) {
	long := make([]rune, 150)
	for i := range long {
		long[i] = 'あ'
	}
	got := []rune(truncate(string(long)))
	assert.Len(t, got, maxDescription)
	assert.Equal(t, '…', got[len(got)-1])
	assert.Equal(t, "short", truncate("short"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestRespondLogsRejectedReply(t *testing.T) {
	s, err := discordgo.New("Bot x")
	require.NoError(t, err)
	s.Client = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Status:     "400 Bad Request",
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"message":"Unknown interaction","code":10062}`)),
			Request:    r,
		}, nil
	})}

	tests := map[string]func(h *Handler, i *discordgo.Interaction){
		"ephemeral": func(h *Handler, i *discordgo.Interaction) {
			h.respondEphemeral(s, i, "hello")
		},
		"embed": func(h *Handler, i *discordgo.Interaction) {
			h.respondEmbed(s, i, &discordgo.MessageEmbed{Title: "blocks"})
		},
	}

	for name, respond := range tests {
		t.Run(name, func(t *testing.T) {
			h := newTestHandler()
			core, logs := observer.New(zapcore.WarnLevel)
			h.logger = zap.New(core)

			respond(h.Handler, &discordgo.Interaction{ID: "1", Token: "t"})

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, "failed to respond to interaction", entries[0].Message)
			assert.Equal(t, "1", entries[0].ContextMap()["interaction_id"])
		})
	}
}
