// Package flagset models the feature-flag set that drives a packaging run.
//
// A [Set] is resolved once, before the component graph is built, and is
// treated as immutable from then on. Flags mirror the options of the
// packaging recipe: optional I/O modules (DICOM via DCMTK or GDCM),
// optional remote modules (RTK, Scanco, Elastix), GPU/CUDA acceleration,
// language bindings, and the shared/static artifact mode.
//
// Sets can be loaded from TOML or HCL profile files (see [Load]) and
// overridden field by field from the command line.
package flagset

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/pkgsmith/itkplan/pkg/errors"
)

// Target operating systems recognized by the planner.
// These affect system-library attachment (e.g. libm on POSIX).
const (
	OSLinux   = "Linux"
	OSWindows = "Windows"
	OSMacos   = "Macos"
	OSFreeBSD = "FreeBSD"
)

// Set is a fully resolved feature-flag set for one packaging run.
//
// The zero value is not a usable configuration - start from [Default]
// and override fields, or load a profile with [Load].
type Set struct {
	// Version is the toolkit version being packaged (e.g. "5.3.0").
	Version string
	// TargetOS is the packaging target platform (one of the OS constants).
	TargetOS string

	// Shared selects shared over static artifacts.
	Shared bool
	// FPIC requests position-independent code for static builds.
	// Meaningless on Windows and for shared builds; see Normalized.
	FPIC bool

	// WithDCMTK enables the DCMTK-backed DICOM I/O component.
	WithDCMTK bool
	// WithGDCM enables the GDCM-backed DICOM I/O component.
	WithGDCM bool
	// WithRTK enables the reconstruction toolkit remote module.
	WithRTK bool
	// WithScanco enables the Scanco microCT I/O remote module.
	WithScanco bool
	// WithElastix enables the Elastix registration toolkit module.
	WithElastix bool
	// WithCUDA enables CUDA support for components that can use it.
	WithCUDA bool
	// WithGPU enables the OpenCL-accelerated component family.
	WithGPU bool

	// PythonBindings holds the binding identifier when language bindings
	// are requested, empty otherwise. The value is opaque to the planner.
	PythonBindings string

	// HDF5Shared records whether the upstream HDF5 dependency is built
	// shared. A shared toolkit requires a shared HDF5.
	HDF5Shared bool
	// DCMTKCharset is the charset-conversion backend of the upstream
	// DCMTK dependency ("icu" enables ICU-backed conversion).
	DCMTKCharset string
}

// Default returns the default flag set: DICOM I/O (both backends) and
// GPU acceleration on, every other optional feature off, static
// artifacts, toolkit 5.3.0 on Linux.
func Default() Set {
	return Set{
		Version:      "5.3.0",
		TargetOS:     OSLinux,
		FPIC:         true,
		WithDCMTK:    true,
		WithGDCM:     true,
		WithGPU:      true,
		DCMTKCharset: "icu",
	}
}

// Normalized returns a copy with settings that cannot take effect
// cleared: fPIC is dropped on Windows and for shared builds.
func (s Set) Normalized() Set {
	if s.Shared || s.TargetOS == OSWindows {
		s.FPIC = false
	}
	return s
}

// BindingsEnabled reports whether language bindings are requested.
func (s Set) BindingsEnabled() bool { return s.PythonBindings != "" }

// PosixTarget reports whether the target links the POSIX math library.
func (s Set) PosixTarget() bool {
	return s.TargetOS == OSLinux || s.TargetOS == OSFreeBSD
}

// SemVer parses the toolkit version.
func (s Set) SemVer() (*semver.Version, error) {
	v, err := semver.NewVersion(s.Version)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFlag, err, "parse toolkit version %q", s.Version)
	}
	return v, nil
}

// LibSuffix returns the versioned artifact suffix (e.g. "-5.3")
// appended to every component's library name.
func (s Set) LibSuffix() (string, error) {
	v, err := s.SemVer()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("-%d.%d", v.Major(), v.Minor()), nil
}

// IncludeRoot returns the default include directory shared by all
// components (e.g. "include/ITK-5.3").
func (s Set) IncludeRoot() (string, error) {
	v, err := s.SemVer()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("include/ITK-%d.%d", v.Major(), v.Minor()), nil
}
