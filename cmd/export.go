package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Narayana2527/health-safari-apis/internal/codec"
	"github.com/Narayana2527/health-safari-apis/pkg/logger"
)

func exportCmd(configPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored availability document in camp.json format",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout оставляем под данные
			cfg, log, err := setup(*configPath, logger.WithOutput(os.Stderr))
			if err != nil {
				return err
			}
			defer log.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			repo, closeRepo, err := openRepository(ctx, cfg, log, nil)
			if err != nil {
				return err
			}
			defer closeRepo()

			doc, err := repo.Load(ctx)
			if err != nil {
				return fmt.Errorf("load document: %w", err)
			}

			data, err := codec.Encode(doc)
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			log.Info("Exported document to %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when empty)")
	return cmd
}
