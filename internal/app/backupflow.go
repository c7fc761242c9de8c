package app

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/pccollector/internal/app/handler"
	"github.com/llehouerou/pccollector/internal/app/popupctl"
	"github.com/llehouerou/pccollector/internal/backup"
	"github.com/llehouerou/pccollector/internal/collection"
	"github.com/llehouerou/pccollector/internal/config"
	"github.com/llehouerou/pccollector/internal/errmsg"
	"github.com/llehouerou/pccollector/internal/keymap"
	"github.com/llehouerou/pccollector/internal/share"
	"github.com/llehouerou/pccollector/internal/ui/confirm"
	"github.com/llehouerou/pccollector/internal/ui/textinput"
)

// importRequest is the confirm context of a parsed backup.
type importRequest struct {
	path  string
	owned collection.Ownership
}

// handleBackupKeys handles export, import, undo and the wishlist sheet.
func (m *Model) handleBackupKeys(a keymap.Action) handler.Result {
	switch a { //nolint:exhaustive // only handling backup actions
	case keymap.ActionExport:
		return handler.Handled(m.exportBackup())
	case keymap.ActionImport:
		def := filepath.Join(m.cfg.BackupDir(), backup.FileName())
		return handler.Handled(m.popups.ShowTextInput(
			popupctl.InputImportPath, "Import backup", def, "path to a backup file", nil))
	case keymap.ActionUndoImport:
		return handler.Handled(m.undoImport())
	case keymap.ActionShareWishlist:
		return handler.Handled(m.shareWishlist())
	}
	return handler.NotHandled
}

func (m *Model) exportBackup() tea.Cmd {
	now := m.now()
	path, err := backup.WriteFile(m.cfg.BackupDir(), m.owned, now)
	if err != nil {
		return m.flashError(errmsg.Format(errmsg.OpBackupExport, err), err)
	}

	m.meta.LastBackup = now.UnixMilli()
	if err := m.state.SaveBackupMeta(m.meta); err != nil {
		m.log.Warn("backup meta not saved", zap.Error(err))
	}
	m.log.Info("backup exported", zap.String("path", path), zap.Int("owned", m.owned.Count()))
	return m.flash(backup.Completed(now).Text, flashSuccess)
}

// handleImportPath reads the file named in the text input and asks for
// confirmation. A bad file leaves the collection untouched.
func (m *Model) handleImportPath(res textinput.Result) tea.Cmd {
	m.popups.Hide(popupctl.TextInput)
	if res.Canceled || res.Text == "" {
		return nil
	}

	path := config.ExpandPath(res.Text)
	owned, err := backup.ReadFile(path)
	if err != nil {
		var ie *backup.ImportError
		if errors.As(err, &ie) {
			m.log.Warn("backup rejected", zap.String("path", path), zap.Stringer("kind", ie.Kind), zap.Error(err))
		} else {
			m.log.Warn("backup unreadable", zap.String("path", path), zap.Error(err))
		}
		return m.flash(backup.ImportFailed, flashError)
	}

	msg := fmt.Sprintf("Replace %d owned cards with %d from %s?",
		m.owned.Count(), owned.Count(), filepath.Base(path))
	return m.popups.ShowConfirm("Import backup", msg, importRequest{path: path, owned: owned})
}

func (m *Model) handleConfirm(res confirm.Result) tea.Cmd {
	m.popups.Hide(popupctl.Confirm)
	req, ok := res.Context.(importRequest)
	if !ok || !res.Confirmed {
		return nil
	}
	return m.applyImport(req)
}

// applyImport replaces ownership with the backup and opens the undo
// window. A new import restarts the window with a fresh snapshot.
func (m *Model) applyImport(req importRequest) tea.Cmd {
	now := m.now()
	m.undoSnapshot = m.owned.Clone()
	m.owned = req.owned
	m.meta.LastImport = now.UnixMilli()
	m.cancelBulk()

	var flash tea.Cmd
	if err := m.state.SaveImport(m.owned, m.meta); err != nil {
		flash = m.flashError(errmsg.FormatWith(errmsg.OpBackupImport, req.path, err), err)
	}
	m.log.Info("backup imported", zap.String("path", req.path), zap.Int("owned", m.owned.Count()))

	m.refreshKeeping()
	return tea.Batch(flash, m.undo.Arm(now))
}

// undoImport restores the snapshot taken by the last import while its
// window is open.
func (m *Model) undoImport() tea.Cmd {
	if !m.undo.Fire(m.now()) {
		return nil
	}
	m.owned = m.undoSnapshot
	m.undoSnapshot = nil
	m.log.Info("import undone", zap.Int("owned", m.owned.Count()))

	if err := m.state.SaveOwned(m.owned); err != nil {
		m.refreshKeeping()
		return m.flashError(errmsg.Format(errmsg.OpBackupUndo, err), err)
	}
	m.refreshKeeping()
	return m.flash(backup.ImportUndone, flashInfo)
}

func (m *Model) shareWishlist() tea.Cmd {
	md := share.Markdown(m.catalog, m.wishlist, m.owned, m.images)
	mdPath, htmlPath, err := share.WriteFiles(m.cfg.BackupDir(), md)
	if err != nil {
		return m.flashError(errmsg.Format(errmsg.OpWishlistShare, err), err)
	}
	m.log.Info("wishlist written", zap.String("markdown", mdPath), zap.String("html", htmlPath))
	return m.flash("✔ Wishlist written: "+filepath.Base(htmlPath), flashSuccess)
}
