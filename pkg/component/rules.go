package component

import (
	"github.com/Masterminds/semver/v3"

	"github.com/pkgsmith/itkplan/pkg/errors"
	"github.com/pkgsmith/itkplan/pkg/flagset"
)

// The three rule kinds below express the packaging conditionals as an
// ordered, individually testable list:
//
//   - conflict rules reject disallowed flag combinations before any
//     graph assembly happens;
//   - inclusion rules decide which optional component families a flag
//     set admits;
//   - mutation rules attach conditional extra dependencies to
//     components already in the graph.
//
// Rules are evaluated in declaration order. Order matters only for
// error precedence (the first failing conflict rule wins) and for the
// position of optional components in the emitted table.

// conflictRule rejects a disallowed flag combination.
type conflictRule struct {
	name  string
	check func(f flagset.Set) error
}

// inclusionRule admits a family of optional components.
type inclusionRule struct {
	name       string
	enabled    func(f flagset.Set) bool
	components []Component
}

// mutationRule attaches conditional extra dependencies.
type mutationRule struct {
	name  string
	when  func(f flagset.Set) bool
	apply func(byName map[string]*Component, f flagset.Set)
}

// elastixValidated is the toolkit version range the Elastix module has
// been validated against.
var elastixValidated = mustConstraint("~5.3")

func mustConstraint(raw string) *semver.Constraints {
	c, err := semver.NewConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

var conflictRules = []conflictRule{
	{
		// A shared toolkit linked against a static HDF5 initializes
		// H5::DataSpace::ALL twice at runtime.
		name: "shared-hdf5",
		check: func(f flagset.Set) error {
			if f.Shared && !f.HDF5Shared {
				return errors.New(errors.ErrCodeConfigConflict,
					"rule shared-hdf5: shared=true requires hdf5_shared=true (a shared toolkit must link a shared hdf5)")
			}
			return nil
		},
	},
	{
		name: "elastix-gdcm",
		check: func(f flagset.Set) error {
			if f.WithElastix && !f.WithGDCM {
				return errors.New(errors.ErrCodeConfigConflict,
					"rule elastix-gdcm: with_elastix=true requires with_gdcm=true (the registration toolkit needs the DICOM component)")
			}
			return nil
		},
	},
	{
		name: "elastix-version",
		check: func(f flagset.Set) error {
			if !f.WithElastix {
				return nil
			}
			v, err := f.SemVer()
			if err != nil {
				return err
			}
			if !elastixValidated.Check(v) {
				return errors.New(errors.ErrCodeUnsupported,
					"rule elastix-version: with_elastix=true is only validated for toolkit 5.3, got %s", f.Version)
			}
			return nil
		},
	},
}

var inclusionRules = []inclusionRule{
	{name: "dcmtk-io", enabled: func(f flagset.Set) bool { return f.WithDCMTK }, components: dicomTable},
	{name: "rtk", enabled: func(f flagset.Set) bool { return f.WithRTK }, components: rtkTable},
	{name: "scanco-io", enabled: func(f flagset.Set) bool { return f.WithScanco }, components: scancoTable},
	{name: "gdcm-io", enabled: func(f flagset.Set) bool { return f.WithGDCM }, components: gdcmTable},
	{name: "elastix", enabled: func(f flagset.Set) bool { return f.WithElastix }, components: elastixTable},
	{name: "cuda", enabled: func(f flagset.Set) bool { return f.WithCUDA }, components: cudaTable},
	{name: "gpu", enabled: func(f flagset.Set) bool { return f.WithGPU }, components: gpuTable},
}

var mutationRules = []mutationRule{
	{
		// The review and test-kernel components read DICOM through
		// GDCM whenever that backend is present.
		name: "gdcm-review",
		when: func(f flagset.Set) bool { return f.WithGDCM },
		apply: func(byName map[string]*Component, f flagset.Set) {
			appendRequires(byName, "ITKReview", "ITKIOGDCM")
			appendRequires(byName, "ITKTestKernel", "ITKIOGDCM")
		},
	},
	{
		// RTK links the CUDA support artifact when CUDA is on.
		name: "rtk-cuda",
		when: func(f flagset.Set) bool { return f.WithRTK && f.WithCUDA },
		apply: func(byName map[string]*Component, f flagset.Set) {
			if c, ok := byName["itkRTK"]; ok {
				c.Libs = append(c.Libs, "ITKCudaCommon")
			}
		},
	},
	{
		// The GPU component family offloads through OpenCL.
		name: "gpu-opencl",
		when: func(f flagset.Set) bool { return f.WithGPU },
		apply: func(byName map[string]*Component, f flagset.Set) {
			for _, entry := range gpuTable {
				if c, ok := byName[entry.Name]; ok {
					c.SystemLibs = append(c.SystemLibs, "OpenCL")
				}
			}
		},
	},
	{
		// Binding generation for Elastix decompresses through libdeflate.
		name: "elastix-bindings-deflate",
		when: func(f flagset.Set) bool { return f.WithElastix && f.BindingsEnabled() },
		apply: func(byName map[string]*Component, f flagset.Set) {
			appendRequires(byName, "ITKElastix", "libdeflate::libdeflate")
		},
	},
	{
		// POSIX targets link the math library for the numeric cores.
		name: "posix-libm",
		when: func(f flagset.Set) bool { return f.PosixTarget() },
		apply: func(byName map[string]*Component, f flagset.Set) {
			for _, name := range []string{"itkvcl", "itkv3p_netlib", "ITKCommon", "ITKniftiio"} {
				if c, ok := byName[name]; ok {
					c.SystemLibs = append(c.SystemLibs, "m")
				}
			}
		},
	},
}

func appendRequires(byName map[string]*Component, name string, req Ref) {
	if c, ok := byName[name]; ok {
		c.Requires = append(c.Requires, req)
	}
}
