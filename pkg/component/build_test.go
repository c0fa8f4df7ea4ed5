package component

import (
	"slices"
	"strings"
	"testing"

	"github.com/pkgsmith/itkplan/pkg/errors"
	"github.com/pkgsmith/itkplan/pkg/flagset"
)

func TestBuild_Defaults(t *testing.T) {
	g, err := Build(flagset.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, name := range []string{"ITKCommon", "ITKIODCMTK", "ITKIOGDCM", "ITKGPUImageFilterBase", "ITKReview"} {
		if !g.Has(name) {
			t.Errorf("graph missing %s", name)
		}
	}
	for _, name := range []string{"itkRTK", "IOScanco", "ITKElastix", "ITKCudaCommon"} {
		if g.Has(name) {
			t.Errorf("graph contains %s, want excluded by default flags", name)
		}
	}
}

func TestBuild_AllOptionalDisabled(t *testing.T) {
	f := flagset.Default()
	f.WithDCMTK = false
	f.WithGDCM = false
	f.WithGPU = false

	g, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if g.Len() != len(baseTable) {
		t.Errorf("Len() = %d, want mandatory set of %d", g.Len(), len(baseTable))
	}
	for i, c := range baseTable {
		if g.Names()[i] != c.Name {
			t.Fatalf("Names()[%d] = %s, want %s (canonical order)", i, g.Names()[i], c.Name)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	f := flagset.Default()
	f.WithRTK = true
	f.WithCUDA = true

	a, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !slices.Equal(a.Names(), b.Names()) {
		t.Error("two builds with identical flags produced different orders")
	}
}

func TestBuild_DICOMScenario(t *testing.T) {
	// DICOM I/O on, GPU and the registration toolkit off.
	f := flagset.Default()
	f.WithDCMTK = false
	f.WithGPU = false

	g, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	dicom, ok := g.Component("ITKIOGDCM")
	if !ok {
		t.Fatal("graph missing ITKIOGDCM")
	}
	if !slices.Contains(dicom.Requires, Ref("ITKIOImageBase")) {
		t.Error("ITKIOGDCM does not require ITKIOImageBase")
	}
	if !slices.Contains(dicom.Requires, Ref("gdcm::gdcmDICT")) {
		t.Error("ITKIOGDCM does not reference the external DICOM toolkit")
	}

	for _, name := range g.Names() {
		if strings.HasPrefix(name, "ITKGPU") {
			t.Errorf("graph contains GPU component %s with gpu disabled", name)
		}
	}
}

func TestBuild_ElastixWithoutGDCM(t *testing.T) {
	f := flagset.Default()
	f.WithElastix = true
	f.WithGDCM = false

	_, err := Build(f)
	if !errors.Is(err, errors.ErrCodeConfigConflict) {
		t.Fatalf("Build() error = %v, want CONFIG_CONFLICT", err)
	}
	// The message must name both flags so the operator can fix either.
	if !strings.Contains(err.Error(), "with_elastix") || !strings.Contains(err.Error(), "with_gdcm") {
		t.Errorf("error does not name both conflicting flags: %v", err)
	}
}

func TestBuild_SharedRequiresSharedHDF5(t *testing.T) {
	f := flagset.Default()
	f.Shared = true
	f.HDF5Shared = false

	_, err := Build(f)
	if !errors.Is(err, errors.ErrCodeConfigConflict) {
		t.Fatalf("Build() error = %v, want CONFIG_CONFLICT", err)
	}

	f.HDF5Shared = true
	if _, err := Build(f); err != nil {
		t.Errorf("Build() with shared hdf5 error = %v", err)
	}
}

func TestBuild_ElastixVersionGate(t *testing.T) {
	f := flagset.Default()
	f.WithElastix = true

	if _, err := Build(f); err != nil {
		t.Errorf("Build() with elastix on 5.3.0 error = %v", err)
	}

	f.Version = "5.2.1"
	_, err := Build(f)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Build() error = %v, want UNSUPPORTED_COMBINATION", err)
	}
}

func TestBuild_GDCMReviewRule(t *testing.T) {
	f := flagset.Default()

	g, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	review, _ := g.Component("ITKReview")
	if !slices.Contains(review.Requires, Ref("ITKIOGDCM")) {
		t.Error("ITKReview does not require ITKIOGDCM with gdcm enabled")
	}
	kernel, _ := g.Component("ITKTestKernel")
	if !slices.Contains(kernel.Requires, Ref("ITKIOGDCM")) {
		t.Error("ITKTestKernel does not require ITKIOGDCM with gdcm enabled")
	}

	f.WithGDCM = false
	g, err = Build(f)
	if err != nil {
		t.Fatalf("Build() without gdcm error = %v", err)
	}
	review, _ = g.Component("ITKReview")
	if slices.Contains(review.Requires, Ref("ITKIOGDCM")) {
		t.Error("ITKReview requires ITKIOGDCM with gdcm disabled")
	}
}

func TestBuild_RTKCudaRule(t *testing.T) {
	f := flagset.Default()
	f.WithRTK = true
	f.WithCUDA = true

	g, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	rtk, _ := g.Component("itkRTK")
	if !slices.Contains(rtk.Libs, "ITKCudaCommon") {
		t.Errorf("itkRTK.Libs = %v, want ITKCudaCommon with cuda enabled", rtk.Libs)
	}
	if !slices.Contains(rtk.Includes, "include/RTK/lpsolve") {
		t.Errorf("itkRTK.Includes = %v, want lpsolve include dir", rtk.Includes)
	}

	f.WithCUDA = false
	g, err = Build(f)
	if err != nil {
		t.Fatalf("Build() without cuda error = %v", err)
	}
	rtk, _ = g.Component("itkRTK")
	if slices.Contains(rtk.Libs, "ITKCudaCommon") {
		t.Error("itkRTK.Libs contains ITKCudaCommon with cuda disabled")
	}
}

func TestBuild_PosixLibm(t *testing.T) {
	f := flagset.Default()

	g, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	common, _ := g.Component("ITKCommon")
	if !slices.Contains(common.SystemLibs, "m") {
		t.Errorf("ITKCommon.SystemLibs = %v, want m on Linux", common.SystemLibs)
	}

	f.TargetOS = flagset.OSWindows
	g, err = Build(f)
	if err != nil {
		t.Fatalf("Build() on Windows error = %v", err)
	}
	common, _ = g.Component("ITKCommon")
	if slices.Contains(common.SystemLibs, "m") {
		t.Error("ITKCommon.SystemLibs contains m on Windows")
	}
}

func TestBuild_ElastixBindingsDeflate(t *testing.T) {
	f := flagset.Default()
	f.WithElastix = true

	g, err := Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	elastix, _ := g.Component("ITKElastix")
	if slices.Contains(elastix.Requires, Ref("libdeflate::libdeflate")) {
		t.Error("ITKElastix references libdeflate without bindings")
	}

	f.PythonBindings = "cp311"
	g, err = Build(f)
	if err != nil {
		t.Fatalf("Build() with bindings error = %v", err)
	}
	elastix, _ = g.Component("ITKElastix")
	if !slices.Contains(elastix.Requires, Ref("libdeflate::libdeflate")) {
		t.Error("ITKElastix does not reference libdeflate with bindings enabled")
	}
}

// TestBuild_FlagSweep runs every combination of the optional feature
// flags. Every accepted combination must yield a graph with unique
// names, no dangling edges (both checked inside Build), and no cycles.
func TestBuild_FlagSweep(t *testing.T) {
	for mask := 0; mask < 1<<7; mask++ {
		f := flagset.Default()
		f.WithDCMTK = mask&1 != 0
		f.WithGDCM = mask&2 != 0
		f.WithRTK = mask&4 != 0
		f.WithScanco = mask&8 != 0
		f.WithElastix = mask&16 != 0
		f.WithCUDA = mask&32 != 0
		f.WithGPU = mask&64 != 0

		g, err := Build(f)
		if err != nil {
			if f.WithElastix && !f.WithGDCM && errors.Is(err, errors.ErrCodeConfigConflict) {
				continue // the one disallowed combination in the sweep
			}
			t.Fatalf("Build(%+v) error = %v", f, err)
		}

		for _, name := range g.Names() {
			if _, err := g.ResolveRequires(name); err != nil {
				t.Fatalf("ResolveRequires(%s) error = %v (flags %+v)", name, err, f)
			}
		}
	}
}
