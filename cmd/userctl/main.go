package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kurochkinivan/file_catalog/internal/auth"
	"github.com/kurochkinivan/file_catalog/internal/config"
	"github.com/kurochkinivan/file_catalog/internal/domain"
	"github.com/kurochkinivan/file_catalog/internal/repository/postgresql"
)

const (
	exitCodeOK = iota
	exitCodeInputErr
	exitCodeInternalErr
)

type flags struct {
	credentialsFile string
	prune           bool
	username        string
	password        string
	host            string
	port            string
	db              string
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	exitCode, err := Run(ctx, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to sync users", slog.String("err", err.Error()))
	}

	stop()
	os.Exit(exitCode)
}

// Run loads the credentials file and brings the users table in line
// with it: every listed user is created or gets its password replaced,
// and with -prune the users missing from the file are removed. The
// whole sync happens in one transaction.
func Run(ctx context.Context, log *slog.Logger) (int, error) {
	f := parseFlags()

	if err := f.validate(); err != nil {
		return exitCodeInputErr, fmt.Errorf("invalid flags: %w", err)
	}

	credentials, err := credentialsFromFile(f.credentialsFile)
	if err != nil {
		return exitCodeInputErr, fmt.Errorf("failed to load credentials: %w", err)
	}

	pool, err := postgresql.NewConnection(ctx, log, config.PostgreSQL{
		Host:     f.host,
		Port:     f.port,
		Username: f.username,
		Password: f.password,
		DBName:   f.db,
	})
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	usersRepository := postgresql.NewUsersRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	err = txManager.WithTransaction(ctx, func(ctx context.Context) error {
		usernames := make([]string, 0, len(credentials))

		for _, credential := range credentials {
			hash, err := auth.HashPassword(credential.Password)
			if err != nil {
				return fmt.Errorf("user %q: %w", credential.Username, err)
			}

			err = usersRepository.UpsertUser(ctx, &domain.User{
				Username:     credential.Username,
				PasswordHash: hash,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert user %q: %w", credential.Username, err)
			}

			usernames = append(usernames, credential.Username)
		}

		if !f.prune {
			return nil
		}

		removed, err := usersRepository.DeleteUsersExcept(ctx, usernames)
		if err != nil {
			return fmt.Errorf("failed to prune users: %w", err)
		}

		log.InfoContext(ctx, "pruned users", slog.Int64("removed", removed))

		return nil
	})
	if err != nil {
		return exitCodeInternalErr, err
	}

	log.InfoContext(ctx, "users synced successfully", slog.Int("count", len(credentials)))

	return exitCodeOK, nil
}

func parseFlags() *flags {
	f := &flags{}
	flag.StringVar(&f.credentialsFile, "file", "", "CSV file with username,password rows")
	flag.BoolVar(&f.prune, "prune", false, "remove users absent from the credentials file")
	flag.StringVar(&f.username, "username", "", "database username")
	flag.StringVar(&f.password, "password", "", "database password")
	flag.StringVar(&f.host, "host", "127.0.0.1", "database host")
	flag.StringVar(&f.port, "port", "5432", "database port")
	flag.StringVar(&f.db, "db", "", "database name")
	flag.Parse()
	return f
}

func (f *flags) validate() error {
	for _, req := range []struct{ name, value string }{
		{"file", f.credentialsFile},
		{"username", f.username},
		{"password", f.password},
		{"db", f.db},
		{"port", f.port},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}

	return nil
}

func credentialsFromFile(filename string) (_ []*domain.Credential, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, file.Close()) }()

	return parseCredentials(file)
}
