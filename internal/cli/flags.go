package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pkgsmith/itkplan/pkg/flagset"
)

// flagOpts collects the feature-flag surface shared by every command
// that plans a graph. Command-line flags start from the defaults; when
// a profile file is given, it becomes the base and only flags the user
// actually set on the command line override it.
type flagOpts struct {
	profile string
	set     flagset.Set
}

// register binds the feature flags onto cmd.
func (o *flagOpts) register(cmd *cobra.Command) {
	o.set = flagset.Default()
	fl := cmd.Flags()

	fl.StringVar(&o.profile, "profile", "", "flag profile file (.toml or .hcl)")

	fl.StringVar(&o.set.Version, "toolkit-version", o.set.Version, "toolkit version to plan for")
	fl.StringVar(&o.set.TargetOS, "os", o.set.TargetOS, "target OS (Linux, Windows, Macos, FreeBSD)")
	fl.BoolVar(&o.set.Shared, "shared", o.set.Shared, "plan shared instead of static artifacts")
	fl.BoolVar(&o.set.FPIC, "fpic", o.set.FPIC, "position-independent code for static builds")
	fl.BoolVar(&o.set.WithDCMTK, "with-dcmtk", o.set.WithDCMTK, "enable DCMTK-backed DICOM I/O")
	fl.BoolVar(&o.set.WithGDCM, "with-gdcm", o.set.WithGDCM, "enable GDCM-backed DICOM I/O")
	fl.BoolVar(&o.set.WithRTK, "with-rtk", o.set.WithRTK, "enable the reconstruction toolkit")
	fl.BoolVar(&o.set.WithScanco, "with-scanco", o.set.WithScanco, "enable Scanco microCT I/O")
	fl.BoolVar(&o.set.WithElastix, "with-elastix", o.set.WithElastix, "enable the Elastix registration toolkit")
	fl.BoolVar(&o.set.WithCUDA, "with-cuda", o.set.WithCUDA, "enable CUDA support")
	fl.BoolVar(&o.set.WithGPU, "with-gpu", o.set.WithGPU, "enable the OpenCL-accelerated component family")
	fl.StringVar(&o.set.PythonBindings, "python-bindings", o.set.PythonBindings, "python binding identifier (empty disables bindings)")
	fl.BoolVar(&o.set.HDF5Shared, "hdf5-shared", o.set.HDF5Shared, "upstream HDF5 is built shared")
	fl.StringVar(&o.set.DCMTKCharset, "dcmtk-charset", o.set.DCMTKCharset, "DCMTK charset-conversion backend")
}

// resolve returns the effective flag set for this invocation.
func (o *flagOpts) resolve(fl *pflag.FlagSet) (flagset.Set, error) {
	if o.profile == "" {
		return o.set, nil
	}

	base, err := flagset.Load(o.profile)
	if err != nil {
		return flagset.Set{}, err
	}

	// Explicit command-line flags win over the profile.
	overrides := map[string]func(*flagset.Set){
		"toolkit-version": func(s *flagset.Set) { s.Version = o.set.Version },
		"os":              func(s *flagset.Set) { s.TargetOS = o.set.TargetOS },
		"shared":          func(s *flagset.Set) { s.Shared = o.set.Shared },
		"fpic":            func(s *flagset.Set) { s.FPIC = o.set.FPIC },
		"with-dcmtk":      func(s *flagset.Set) { s.WithDCMTK = o.set.WithDCMTK },
		"with-gdcm":       func(s *flagset.Set) { s.WithGDCM = o.set.WithGDCM },
		"with-rtk":        func(s *flagset.Set) { s.WithRTK = o.set.WithRTK },
		"with-scanco":     func(s *flagset.Set) { s.WithScanco = o.set.WithScanco },
		"with-elastix":    func(s *flagset.Set) { s.WithElastix = o.set.WithElastix },
		"with-cuda":       func(s *flagset.Set) { s.WithCUDA = o.set.WithCUDA },
		"with-gpu":        func(s *flagset.Set) { s.WithGPU = o.set.WithGPU },
		"python-bindings": func(s *flagset.Set) { s.PythonBindings = o.set.PythonBindings },
		"hdf5-shared":     func(s *flagset.Set) { s.HDF5Shared = o.set.HDF5Shared },
		"dcmtk-charset":   func(s *flagset.Set) { s.DCMTKCharset = o.set.DCMTKCharset },
	}
	for name, apply := range overrides {
		if fl.Changed(name) {
			apply(&base)
		}
	}

	return base, nil
}
