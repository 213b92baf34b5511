package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/kurochkinivan/file_catalog/internal/domain"
	"github.com/kurochkinivan/file_catalog/internal/report"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	files := []*domain.File{
		{
			ID:         1,
			Name:       "a.pdf",
			FileType:   "application/pdf",
			Size:       2 << 20,
			Status:     domain.StatusAccepted,
			Reason:     "File uploaded successfully",
			UploadedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			Name:       "b.pdf",
			FileType:   "application/pdf",
			Size:       12 << 20,
			Status:     domain.StatusRejected,
			Reason:     "file size exceeds the limit",
			UploadedAt: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC),
		},
	}

	pdf, err := report.New().Generate(files)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGenerator_Generate_EmptyCatalog(t *testing.T) {
	t.Parallel()

	pdf, err := report.New().Generate(nil)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
}
