// Package fsops wraps the filesystem move primitive.
package fsops

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// Move renames src to dst. When the rename fails because src and dst live on
// different filesystems, it falls back to copying the file contents and
// metadata and then removing the source.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}
	return copyAcross(src, dst)
}

// copyAcross performs the cross-filesystem fallback: create dst exclusively
// (the caller already checked it does not exist), copy contents and mode,
// carry the mtime over, then remove src. A failed copy leaves src in place.
func copyAcross(src, dst string) error {
	fi, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	// mtime is what the strftime templates key on; keep it intact.
	_ = os.Chtimes(dst, fi.ModTime(), fi.ModTime())

	return os.Remove(src)
}
