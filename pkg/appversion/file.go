package appversion

import (
	"fmt"
	"log/slog"

	"github.com/MacroPower/appversion/pkg/pathutil"
	"github.com/MacroPower/appversion/pkg/verrors"
	"github.com/MacroPower/appversion/pkg/versionfile"
)

// SetFile sets the version file. path may be absolute, relative to the
// project root, or symbolic (starting with [pathutil.RootMarker]).
func (d *Descriptor) SetFile(path string) error {
	r, err := pathutil.Resolve(path, d.rootDir, d.appDir)
	if err != nil {
		return fmt.Errorf("set file %q: %w", path, err)
	}

	d.file = r.Symbolic
	d.resolvedFile = r.Canonical

	slog.Debug("set version file", "symbolic", d.file, "path", d.resolvedFile)

	return nil
}

// File returns the symbolic version file path, or "".
func (d *Descriptor) File() string { return d.file }

// ResolvedFile returns the canonical version file path, or "".
func (d *Descriptor) ResolvedFile() string { return d.resolvedFile }

// ReadFile hydrates the descriptor from its version file. A missing file is
// not an error and leaves the descriptor unchanged.
func (d *Descriptor) ReadFile() error {
	if d.resolvedFile == "" {
		return verrors.ErrNoFile
	}

	if err := d.store.Read(d.resolvedFile, d); err != nil {
		return fmt.Errorf("read version file: %w", err)
	}

	return nil
}

// DumpConfig writes the descriptor to its version file.
func (d *Descriptor) DumpConfig() error {
	if d.resolvedFile == "" {
		return verrors.ErrNoFile
	}

	if err := d.store.Write(d.resolvedFile, d); err != nil {
		return fmt.Errorf("write version file: %w", err)
	}

	return nil
}

// Document implements [versionfile.Source].
func (d *Descriptor) Document() *versionfile.Document {
	authors := d.credits.Strings()
	applyAssets := d.applyAssets

	return &versionfile.Document{
		Version: versionfile.Version{
			Major:           d.major,
			Minor:           d.minor,
			Patch:           d.patch,
			PreRelease:      versionfile.String(d.preRelease),
			Build:           versionfile.String(d.build),
			DeployTimestamp: versionfile.String(d.deployTimestamp),
			License:         versionfile.String(d.license),
			Copyright:       versionfile.String(d.copyright),
			Credits:         &authors,
		},
		File:        versionfile.String(d.file),
		ApplyAssets: &applyAssets,
	}
}

// ApplyDocument implements [versionfile.Target]. Fields absent from doc keep
// their current values. The stored file path is informational and ignored.
func (d *Descriptor) ApplyDocument(doc *versionfile.Document) {
	v := doc.Version

	if v.Major != nil {
		d.SetMajor(v.Major)
	}

	if v.Minor != nil {
		d.SetMinor(v.Minor)
	}

	if v.Patch != nil {
		d.SetPatch(v.Patch)
	}

	applyString(v.PreRelease, d.SetPreRelease)
	applyString(v.Build, d.SetBuild)
	applyString(v.DeployTimestamp, d.SetDeployTimestamp)
	applyString(v.License, d.SetLicense)
	applyString(v.Copyright, d.SetCopyright)

	if v.Credits != nil {
		d.SetCredits(*v.Credits)
	}

	if doc.ApplyAssets != nil {
		d.SetApplyAssets(*doc.ApplyAssets)
	}
}

func applyString(p *string, set func(string) *Descriptor) {
	if p != nil {
		set(*p)
	}
}
