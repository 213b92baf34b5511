package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/kurochkinivan/file_catalog/internal/client"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Usage:   "file catalog dashboard client",
		Version: version,
		Flags:   flags(),
		Commands: []*cli.Command{
			healthCmd(),
			uploadCmd(),
			listCmd(),
			deleteCmd(),
			exportCmd(),
		},
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "base-url",
			Aliases: []string{"b"},
			Usage:   "Set catalog service base URL",
			Value:   "http://localhost:8000",
			Sources: cli.EnvVars("CATALOG_BASE_URL"),
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "Set basic auth username",
			Sources: cli.EnvVars("CATALOG_USERNAME"),
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Set basic auth password",
			Sources: cli.EnvVars("CATALOG_PASSWORD"),
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Set request timeout",
			Value:   30 * time.Second,
			Sources: cli.EnvVars("CATALOG_TIMEOUT"),
		},
	}
}

func newClient(cmd *cli.Command) *client.Client {
	return client.New(
		cmd.String("base-url"),
		cmd.String("username"),
		cmd.String("password"),
		cmd.Duration("timeout"),
	)
}

func healthCmd() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "check that the catalog service is reachable",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			health, err := newClient(cmd).Health(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s\n", health.Service, health.Status)

			return nil
		},
	}
}

func uploadCmd() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "upload a PDF file",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("FILE argument is required")
			}

			result, err := newClient(cmd).Upload(ctx, path)
			if err != nil {
				return err
			}

			fmt.Printf("status:      %s\n", result.Status)
			fmt.Printf("reason:      %s\n", result.Reason)
			fmt.Printf("database id: %d\n", result.DatabaseID)
			fmt.Printf("uploaded by: %s\n", result.UploadedBy)

			return nil
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list all uploaded files",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := newClient(cmd).Dashboard(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("retrieved by %s, %d files\n\n", data.RetrievedBy, data.TotalFiles)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE\tSTATUS\tREASON\tUPLOADED AT")
			for _, file := range data.Files {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
					file.ID,
					file.Name,
					file.FileType,
					file.Size,
					file.Status,
					file.Reason,
					file.UploadedAt.Format(time.DateTime),
				)
			}

			return w.Flush()
		},
	}
}

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "delete a file by id",
		ArgsUsage: "ID",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := strconv.ParseInt(cmd.Args().First(), 10, 64)
			if err != nil {
				return fmt.Errorf("ID argument must be an integer")
			}

			result, err := newClient(cmd).Delete(ctx, id)
			if err != nil {
				return err
			}

			fmt.Println(result.Message)

			return nil
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "download the catalog summary as PDF",
		ArgsUsage: "PATH",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				path = "catalog.pdf"
			}

			pdf, err := newClient(cmd).Export(ctx)
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %q: %w", path, err)
			}

			fmt.Printf("saved catalog summary to %s\n", path)

			return nil
		},
	}
}
