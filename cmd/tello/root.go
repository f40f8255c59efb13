package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tellobot/internal/application"
	"tellobot/internal/config"
	"tellobot/internal/domain"
	"tellobot/internal/domain/entities"
	"tellobot/internal/infrastructure/i18n"
	"tellobot/internal/infrastructure/logging"
	"tellobot/internal/infrastructure/transport"
)

// app holds what every subcommand needs, built once in PersistentPreRunE.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	catalog *application.CatalogService
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "tello",
		Short:        "Inspect the Tello blocks and fly the drone from a terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
	}
	root.AddCommand(newCatalogCmd(a), newBlocksCmd(a), newInvokeCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.catalog = application.NewCatalogService(i18n.NewTranslator(string(cfg.DefaultLocale), logger.Named("i18n")))
	return nil
}

func newCatalogCmd(a *app) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the block catalog as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("locale") {
				locale = string(a.cfg.DefaultLocale)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.catalog.BuildCatalog(locale))
		},
	}
	cmd.Flags().StringVar(&locale, "locale", string(domain.DefaultLocale), "display locale (en, ja, ja-Hira)")
	return cmd
}

func newBlocksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "List the block opcodes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, op := range entities.Operations() {
				fmt.Fprintln(cmd.OutOrStdout(), op.ID)
			}
			return nil
		},
	}
}

func newInvokeCmd(a *app) *cobra.Command {
	var (
		x       string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "invoke <opcode>",
		Short: "Send one block to the drone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := transport.New(a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer link.Close()

			blockArgs := domain.Args{}
			if cmd.Flags().Changed("x") {
				blockArgs[entities.ParamX] = x
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			runErr := make(chan error, 1)
			go func() { runErr <- link.Run(ctx) }()

			sent, err := application.NewDispatcher(link, a.logger).Invoke(args[0], blockArgs)
			if err != nil {
				return err
			}
			drained := make(chan error, 1)
			go func() { drained <- link.Drain(ctx) }()
			select {
			case err := <-runErr:
				if err != nil {
					return err
				}
				return errors.New("transport stopped before the command was sent")
			case err := <-drained:
				if err != nil {
					return fmt.Errorf("waiting for the drone: %w", err)
				}
			}
			cancel()
			if err := <-runErr; err != nil {
				return err
			}

			if sent == "" {
				sent = "(connect)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), sent)
			return nil
		},
	}
	cmd.Flags().StringVar(&x, "x", "", "block argument X (distance in cm or angle in degrees)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "maximum time to wait for the drone")
	return cmd
}
