package report

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/file_catalog/internal/domain"
)

// Generator renders the file catalog as a PDF summary.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(files []*domain.File) ([]byte, error) {
	cfg := config.NewBuilder().Build()
	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(12, "File Catalog", props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Generated at %s, %d files total", time.Now().Format(time.RFC3339), len(files)), props.Text{
		Size:  9,
		Align: align.Center,
	}))

	m.AddRow(8,
		text.NewCol(1, "ID", headerProps()),
		text.NewCol(3, "Name", headerProps()),
		text.NewCol(2, "Type", headerProps()),
		text.NewCol(1, "Size", headerProps()),
		text.NewCol(2, "Status", headerProps()),
		text.NewCol(3, "Uploaded at", headerProps()),
	)

	for _, file := range files {
		m.AddRow(6,
			text.NewCol(1, fmt.Sprintf("%d", file.ID), cellProps()),
			text.NewCol(3, file.Name, cellProps()),
			text.NewCol(2, file.FileType, cellProps()),
			text.NewCol(1, formatSize(file.Size), cellProps()),
			text.NewCol(2, string(file.Status), cellProps()),
			text.NewCol(3, file.UploadedAt.Format(time.DateTime), cellProps()),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func formatSize(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}

func headerProps() props.Text {
	return props.Text{
		Size:  10,
		Style: fontstyle.Bold,
	}
}

func cellProps() props.Text {
	return props.Text{
		Size: 9,
	}
}
