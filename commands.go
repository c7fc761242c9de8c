package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/pccollector/internal/backup"
	"github.com/llehouerou/pccollector/internal/catalog"
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/config"
	"github.com/llehouerou/pccollector/internal/errmsg"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Write a backup of owned cards",
	Long:  `Write the owned-card backup into dir, or the configured backup directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openState()
		if err != nil {
			return err
		}
		defer st.Close()

		dir := cfg.BackupDir()
		if len(args) == 1 {
			dir = config.ExpandPath(args[0])
		}

		now := time.Now()
		owned := st.Owned()
		path, err := backup.WriteFile(dir, owned, now)
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpBackupExport, err))
		}

		meta := st.BackupMeta()
		meta.LastBackup = now.UnixMilli()
		if err := st.SaveBackupMeta(meta); err != nil {
			log.Warn("backup meta not saved", zap.Error(err))
		}
		log.Info("backup exported", zap.String("path", path), zap.Int("owned", owned.Count()))

		fmt.Fprintf(cmd.OutOrStdout(), "%d owned cards written to %s\n", owned.Count(), path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace owned cards with a backup",
	Long: `Replace the whole owned-card set with the contents of a backup file.
An invalid file changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ExpandPath(args[0])
		owned, err := backup.ReadFile(path)
		if err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpBackupImport, path, err))
		}

		st, err := openState()
		if err != nil {
			return err
		}
		defer st.Close()

		before := st.Owned().Count()
		meta := st.BackupMeta()
		meta.LastImport = time.Now().UnixMilli()
		if err := st.SaveImport(owned, meta); err != nil {
			return errors.New(errmsg.FormatWith(errmsg.OpBackupImport, path, err))
		}
		log.Info("backup imported", zap.String("path", path), zap.Int("owned", owned.Count()))

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d owned cards (was %d)\n", owned.Count(), before)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [category]",
	Short: "Print collection progress",
	Long:  `Print owned and wishlisted counts per category, or per member for one category.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadDir(cfg.DataDir, cfg.GetCategories())
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpCatalogLoad, err))
		}
		st, err := openState()
		if err != nil {
			return err
		}
		defer st.Close()

		owned, wish := st.Owned(), st.Wishlist()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			stats := collection.CategoryStats(cat, owned, wish)
			for _, c := range cat.Categories() {
				fmt.Fprintf(out, "%-18s %s\n", catalog.Label(c), statsLine(stats[c]))
			}
			if last := st.BackupMeta().LastBackupTime(); !last.IsZero() {
				fmt.Fprintf(out, "\nLast backup %s\n", humanize.Time(last))
			}
			return nil
		}

		category := args[0]
		if !slices.Contains(cat.Categories(), category) {
			return fmt.Errorf("unknown category %q", category)
		}
		items := cat.Items(category)
		fmt.Fprintf(out, "%s  %s\n\n", catalog.Label(category), statsLine(collection.Count(items, owned, wish)))
		for _, ms := range collection.MemberStats(items, owned, wish) {
			fmt.Fprintf(out, "%-12s %s\n", ms.Member, statsLine(ms.Stats))
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the catalog files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := catalog.LoadDir(cfg.DataDir, cfg.GetCategories())
		if err != nil {
			var ce *catalog.Error
			if errors.As(err, &ce) {
				log.Error("catalog rejected", zap.Stringer("kind", ce.Kind), zap.String("category", ce.Category))
			}
			return errors.New(errmsg.Format(errmsg.OpCatalogLoad, err))
		}
		out := cmd.OutOrStdout()
		for _, c := range cat.Categories() {
			fmt.Fprintf(out, "%-18s %s items\n", catalog.Label(c), humanize.Comma(int64(len(cat.Items(c)))))
		}
		fmt.Fprintf(out, "catalog ok: %s items\n", humanize.Comma(int64(cat.Len())))
		return nil
	},
}

func statsLine(s collection.Stats) string {
	return fmt.Sprintf("%4d/%-4d %3d%%  wishlisted %d", s.Owned, s.Total, s.Percent(), s.Wishlisted)
}
