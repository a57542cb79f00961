package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Narayana2527/health-safari-apis/internal/codec"
	"github.com/Narayana2527/health-safari-apis/internal/infra/storage/document"
	"github.com/Narayana2527/health-safari-apis/pkg/logger"
)

func seedCmd(configPath *string) *cobra.Command {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load an availability document (camp.json format) into the configured storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(*configPath, logger.WithOutput(os.Stderr))
			if err != nil {
				return err
			}
			defer log.Close()

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			doc, err := codec.Decode(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", file, err)
			}
			if err := doc.Validate(); err != nil {
				return fmt.Errorf("validate %s: %w", file, err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			repo, closeRepo, err := openRepository(ctx, cfg, log, nil)
			if err != nil {
				return err
			}
			defer closeRepo()

			if !force {
				_, err := repo.Load(ctx)
				switch {
				case err == nil:
					return errors.New("document already exists in storage, use --force to overwrite")
				case !errors.Is(err, document.ErrDocumentNotFound):
					return fmt.Errorf("check existing document: %w", err)
				}
			}

			if err := repo.Save(ctx, doc); err != nil {
				return fmt.Errorf("save document: %w", err)
			}

			log.Info("Seeded %d departments from %s into %s storage", len(doc.Departments), file, cfg.Storage.Backend)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "camp.json", "Path to availability document")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing document")
	return cmd
}
