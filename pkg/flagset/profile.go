package flagset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/pkgsmith/itkplan/pkg/errors"
)

// profile is the on-disk representation of a flag set. Every field is
// optional; absent fields keep their default. TOML and HCL share the
// same field names.
type profile struct {
	Version        *string `toml:"version" hcl:"version,optional"`
	TargetOS       *string `toml:"target_os" hcl:"target_os,optional"`
	Shared         *bool   `toml:"shared" hcl:"shared,optional"`
	FPIC           *bool   `toml:"fpic" hcl:"fpic,optional"`
	WithDCMTK      *bool   `toml:"with_dcmtk" hcl:"with_dcmtk,optional"`
	WithGDCM       *bool   `toml:"with_gdcm" hcl:"with_gdcm,optional"`
	WithRTK        *bool   `toml:"with_rtk" hcl:"with_rtk,optional"`
	WithScanco     *bool   `toml:"with_scanco" hcl:"with_scanco,optional"`
	WithElastix    *bool   `toml:"with_elastix" hcl:"with_elastix,optional"`
	WithCUDA       *bool   `toml:"with_cuda" hcl:"with_cuda,optional"`
	WithGPU        *bool   `toml:"with_gpu" hcl:"with_gpu,optional"`
	PythonBindings *string `toml:"python_bindings" hcl:"python_bindings,optional"`
	HDF5Shared     *bool   `toml:"hdf5_shared" hcl:"hdf5_shared,optional"`
	DCMTKCharset   *string `toml:"dcmtk_charset" hcl:"dcmtk_charset,optional"`
}

// Load reads a profile file and applies it over [Default]. The format
// is selected by extension: .toml or .hcl.
func Load(path string) (Set, error) {
	var p profile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Set{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "read profile %s", path)
		}
		if err := toml.Unmarshal(data, &p); err != nil {
			return Set{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "decode profile %s", path)
		}
	case ".hcl":
		if err := hclsimple.DecodeFile(path, nil, &p); err != nil {
			return Set{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "decode profile %s", path)
		}
	default:
		return Set{}, errors.New(errors.ErrCodeInvalidProfile, "unsupported profile format %q (want .toml or .hcl)", filepath.Ext(path))
	}

	return p.apply(Default()), nil
}

// apply overlays the profile's set fields on base.
func (p profile) apply(base Set) Set {
	setString(&base.Version, p.Version)
	setString(&base.TargetOS, p.TargetOS)
	setBool(&base.Shared, p.Shared)
	setBool(&base.FPIC, p.FPIC)
	setBool(&base.WithDCMTK, p.WithDCMTK)
	setBool(&base.WithGDCM, p.WithGDCM)
	setBool(&base.WithRTK, p.WithRTK)
	setBool(&base.WithScanco, p.WithScanco)
	setBool(&base.WithElastix, p.WithElastix)
	setBool(&base.WithCUDA, p.WithCUDA)
	setBool(&base.WithGPU, p.WithGPU)
	setString(&base.PythonBindings, p.PythonBindings)
	setBool(&base.HDF5Shared, p.HDF5Shared)
	setString(&base.DCMTKCharset, p.DCMTKCharset)
	return base
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
