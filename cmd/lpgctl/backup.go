package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	backupAdmin string
	backupOut   string
	backupIn    string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or restore a tenant's data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a tenant backup document to a file or stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		adminID, err := parseAdmin(backupAdmin)
		if err != nil {
			return err
		}
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		doc, err := newBackupService(e).Generate(cmd.Context(), tenant.ForAdmin(adminID), models.BackupManual)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if backupOut != "" && backupOut != "-" {
			f, err := os.Create(backupOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", backupOut, err)
			}
			defer f.Close()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace a tenant's data with a backup document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		adminID, err := parseAdmin(backupAdmin)
		if err != nil {
			return err
		}
		doc, err := readDocument(cmd.InOrStdin(), backupIn)
		if err != nil {
			return err
		}
		if err := service.ValidateDocument(doc); err != nil {
			return err
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := newBackupService(e).Restore(cmd.Context(), tenant.ForAdmin(adminID), doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "restored backup of %s into %s: %v\n", result.RestoredFrom, adminID, result.Rows)
		return nil
	},
}

func newBackupService(e *env) *service.BackupService {
	settings := service.NewSettingService(repository.NewSettingRepository(e.db))
	return service.NewBackupService(repository.NewBackupRepository(e.db), settings, e.cfg.BackupRetention)
}

func parseAdmin(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--admin is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--admin: %w", err)
	}
	return id, nil
}

func readDocument(stdin io.Reader, path string) (*service.BackupDocument, error) {
	in := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}
	var doc service.BackupDocument
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode backup document: %w", err)
	}
	return &doc, nil
}

func init() {
	backupCmd.PersistentFlags().StringVar(&backupAdmin, "admin", "", "tenant admin id (UUID)")
	backupExportCmd.Flags().StringVar(&backupOut, "out", "", "output file; stdout when empty or -")
	backupRestoreCmd.Flags().StringVar(&backupIn, "in", "", "input file; stdin when empty or -")

	backupCmd.AddCommand(backupExportCmd, backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}
