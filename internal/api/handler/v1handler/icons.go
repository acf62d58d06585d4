package v1handler

import (
	"errors"
	"io/fs"
	"net/http"
	"ontrack/pkg/serrors"
	"os"
	"path/filepath"
)

const (
	iconDir       = "icon"
	schoolIconDir = "school_icon"
	defaultIcon   = "default"
	iconExt       = ".png"
)

// Icon serves <static>/icon/<iconID>.png, falling back to default.png.
func (h *Handler) Icon(w http.ResponseWriter, r *http.Request) {
	h.serveIcon(w, r, iconDir, r.PathValue("iconID"))
}

// SchoolIcon serves <static>/school_icon/<school>.png, falling back to
// default.png.
func (h *Handler) SchoolIcon(w http.ResponseWriter, r *http.Request) {
	h.serveIcon(w, r, schoolIconDir, r.PathValue("school"))
}

func (h *Handler) serveIcon(w http.ResponseWriter, r *http.Request, dir, name string) {
	path, err := h.resolveIcon(dir, name)
	if err != nil {
		WriteError(r.Context(), w, err)

		return
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

// resolveIcon returns the file for name inside dir, or the directory's
// default icon. name is reduced to its base so it cannot leave dir.
func (h *Handler) resolveIcon(dir, name string) (string, error) {
	base := filepath.Join(h.deps.StaticDir, dir)

	candidates := []string{defaultIcon + iconExt}
	if clean := filepath.Base(filepath.Clean("/" + name)); clean != "/" && clean != "." {
		candidates = append([]string{clean + iconExt}, candidates...)
	}

	for _, c := range candidates {
		path := filepath.Join(base, c)
		info, err := os.Stat(path)
		switch {
		case err == nil && info.Mode().IsRegular():
			return path, nil
		case err == nil, errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", serrors.Wrap(serrors.ErrInternal, err, "could not stat icon")
		}
	}

	return "", serrors.With(serrors.ErrNotFound, "icon not found")
}
