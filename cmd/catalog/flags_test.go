package main

import (
	"context"
	"testing"
	"time"

	"github.com/kurochkinivan/file_catalog/internal/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestConfigLoad(t *testing.T) {
	t.Parallel()

	var cfg *config.Config

	cmd := &cli.Command{
		Name:  "catalog",
		Flags: flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg = config.Load(cmd)
			return nil
		},
	}

	err := cmd.Run(context.Background(), []string{
		"catalog",
		"--max-upload-size", "123456",
		"--pg-host", "localhost",
		"--pg-port", "5432",
		"--pg-username", "catalog",
		"--pg-password", "s3cret",
		"--pg-dbname", "file_catalog",
		"--http-port", "8000",
	})
	require.NoError(t, err)

	require.NotNil(t, cfg)
	require.Equal(t, int64(123456), cfg.App.MaxUploadSize)
	require.Equal(t, "localhost", cfg.PostgreSQL.Host)
	require.Equal(t, "file_catalog", cfg.PostgreSQL.DBName)
	require.Equal(t, "8000", cfg.HTTP.Port)
	require.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
}
