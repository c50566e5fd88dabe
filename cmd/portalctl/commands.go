package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/infra/auth"
	logs "portal/internal/infra/log"
	"portal/internal/infra/persistence/postgres"
	"portal/internal/infra/qrcode"
	"portal/internal/infra/receipt"
	"portal/internal/usecase/impl"
)

type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) openDB() (*gorm.DB, func(), error) {
	db, err := postgres.Open(e.cfg, e.logger)
	if err != nil {
		return nil, nil, err
	}

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return db, closeDB, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			db, closeDB, err := e.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")

			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account if the email is free",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("PORTAL_ADMIN_PASSWORD")
			}
			if strings.TrimSpace(email) == "" || password == "" {
				return errors.New("--email and --password (or PORTAL_ADMIN_PASSWORD) are required")
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}

			db, closeDB, err := e.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			sessions, err := auth.NewJWTSessionService(e.cfg)
			if err != nil {
				return err
			}

			authUC := impl.NewAuthService(impl.AuthServiceParams{
				TxManager: postgres.NewTransactionManager(db),
				UserRepo:  postgres.NewUserRepository(db),
				Hasher:    auth.NewBcryptHasher(e.cfg),
				Sessions:  sessions,
				Logger:    e.logger,
			})

			created, err := authUC.BootstrapAdmin(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %s created.\n", entity.NormalizeEmail(email))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "An account for %s already exists, nothing changed.\n", entity.NormalizeEmail(email))
			}

			return nil
		},
	}

	cmd.Flags().String("email", "", "Admin email")
	cmd.Flags().String("password", "", "Admin password")

	return cmd
}

func renderReceiptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render-receipt",
		Short: "Render a sample receipt PDF to preview the layout",
		Example: `  portalctl render-receipt --title "Payment Receipt" --field "Description=Rent" --field "Amount=1200.50" --out receipt.pdf`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title, _ := cmd.Flags().GetString("title")
			rawFields, _ := cmd.Flags().GetStringArray("field")
			link, _ := cmd.Flags().GetString("link")
			out, _ := cmd.Flags().GetString("out")

			fields, err := parseFields(rawFields)
			if err != nil {
				return err
			}

			cfg := &config.Config{}
			cfg.Receipt.QRCode = link != ""
			cfg.Receipt.QRSize = 256

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			renderer := receipt.NewRenderer(cfg, qrcode.NewFromConfig(cfg), logger)

			pdf, err := renderer.RenderWithLink(title, fields, link)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", out)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes).\n", out, len(pdf))

			return nil
		},
	}

	cmd.Flags().String("title", "Receipt", "Receipt title")
	cmd.Flags().StringArray("field", nil, "Receipt field as Label=Value, repeatable")
	cmd.Flags().String("link", "", "Optional URL encoded as a QR code")
	cmd.Flags().String("out", "receipt.pdf", "Output file")

	return cmd
}

// parseFields splits each "Label=Value" on the first '='
func parseFields(raw []string) ([]entity.ReceiptField, error) {
	fields := make([]entity.ReceiptField, 0, len(raw))
	for _, item := range raw {
		label, value, ok := strings.Cut(item, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, errors.Errorf("invalid field %q, want Label=Value", item)
		}

		fields = append(fields, entity.ReceiptField{Label: label, Value: value})
	}

	return fields, nil
}
