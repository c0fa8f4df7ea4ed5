package manifest

import "github.com/pkgsmith/itkplan/pkg/flagset"

// staticToggles never vary with the flag set. The moduleToggles table
// below covers the modules built unconditionally; everything else is
// decided per flag inside Toggles.
var staticToggles = map[string]bool{
	"BUILD_EXAMPLES":              false,
	"BUILD_TESTING":               false,
	"BUILD_DOCUMENTATION":         false,
	"ITK_SKIP_PATH_LENGTH_CHECKS": true,

	"ITK_USE_SYSTEM_LIBRARIES":        true,
	"ITK_USE_SYSTEM_DOUBLECONVERSION": true,
	"ITK_USE_SYSTEM_EIGEN":            true,
	"ITK_USE_SYSTEM_FFTW":             true,
	"ITK_USE_SYSTEM_HDF5":             true,
	"ITK_USE_SYSTEM_ICU":              true,
	"ITK_USE_SYSTEM_JPEG":             true,
	"ITK_USE_SYSTEM_PNG":              true,
	"ITK_USE_SYSTEM_TIFF":             true,
	"ITK_USE_SYSTEM_ZLIB":             true,

	// Bundled copies stay in use until recipes exist for them.
	"ITK_USE_SYSTEM_KWIML": false,
	"ITK_USE_SYSTEM_VXL":   false,

	"ITK_BUILD_DEFAULT_MODULES": false,
	"Module_ITKDeprecated":      false,
	"Module_ITKMINC":            false,
	"Module_ITKIOMINC":          false,

	"Module_ITKVideoBridgeOpenCV":       false,
	"Module_ITKVTK":                     false,
	"Module_ITKVtkGlue":                 false,
	"Module_ITKLevelSetsv4Visualization": false,
	"Module_ITKVideoBridgeVXL":          false,
	"Module_ITKVideoIO":                 false,
	"Module_ITKIOTransformHDF5":         false,
}

// moduleToggles are the unconditionally enabled build modules.
var moduleToggles = []string{
	"Module_ITKIOHDF5",
	"Module_ITKAnisotropicSmoothing",
	"Module_ITKAntiAlias",
	"Module_ITKBiasCorrection",
	"Module_ITKBinaryMathematicalMorphology",
	"Module_ITKBioCell",
	"Module_ITKClassifiers",
	"Module_ITKColormap",
	"Module_ITKConnectedComponents",
	"Module_ITKConvolution",
	"Module_ITKCurvatureFlow",
	"Module_ITKDeconvolution",
	"Module_ITKDeformableMesh",
	"Module_ITKDenoising",
	"Module_ITKDiffusionTensorImage",
	"Module_ITKDisplacementField",
	"Module_ITKDistanceMap",
	"Module_ITKEigen",
	"Module_ITKFEM",
	"Module_ITKFEMRegistration",
	"Module_ITKFFT",
	"Module_ITKFastMarching",
	"Module_ITKGIFTI",
	"Module_ITKIOCSV",
	"Module_ITKIOGE",
	"Module_ITKIOIPL",
	"Module_ITKIOMesh",
	"Module_ITKIOPhilipsREC",
	"Module_ITKIORAW",
	"Module_ITKIOSiemens",
	"Module_ITKIOSpatialObjects",
	"Module_ITKIOTransformBase",
	"Module_ITKIOTransformInsightLegacy",
	"Module_ITKIOTransformMatlab",
	"Module_ITKIOXML",
	"Module_ITKImageCompare",
	"Module_ITKImageCompose",
	"Module_ITKImageFeature",
	"Module_ITKImageFusion",
	"Module_ITKImageGradient",
	"Module_ITKImageGrid",
	"Module_ITKImageIntensity",
	"Module_ITKImageLabel",
	"Module_ITKImageSources",
	"Module_ITKImageStatistics",
	"Module_ITKIntegratedTest",
	"Module_ITKKLMRegionGrowing",
	"Module_ITKLabelMap",
	"Module_ITKLabelVoting",
	"Module_ITKLevelSets",
	"Module_ITKLevelSetsv4",
	"Module_ITKMarkovRandomFieldsClassifiers",
	"Module_ITKMathematicalMorphology",
	"Module_ITKMetricsv4",
	"Module_ITKNarrowBand",
	"Module_ITKNeuralNetworks",
	"Module_ITKOptimizers",
	"Module_ITKOptimizersv4",
	"Module_ITKPDEDeformableRegistration",
	"Module_ITKPath",
	"Module_ITKPolynomials",
	"Module_ITKQuadEdgeMeshFiltering",
	"Module_ITKRegionGrowing",
	"Module_ITKRegistrationCommon",
	"Module_ITKRegistrationMethodsv4",
	"Module_ITKReview",
	"Module_ITKSignedDistanceFunction",
	"Module_ITKSmoothing",
	"Module_ITKSpatialFunction",
	"Module_ITKTBB",
	"Module_ITKThresholding",
	"Module_ITKVideoCore",
	"Module_ITKVideoFiltering",
	"Module_ITKVoronoi",
	"Module_ITKWatersheds",
	"Module_ITKDICOMParser",
}

// gpuModuleToggles follow the gpu_accel flag as a group.
var gpuModuleToggles = []string{
	"Module_ITKGPUAnisotropicSmoothing",
	"Module_ITKGPUImageFilterBase",
	"Module_ITKGPUPDEDeformableRegistration",
	"Module_ITKGPURegistrationCommon",
	"Module_ITKGPUSmoothing",
	"Module_ITKGPUThresholding",
}

// Toggles returns the build-system toggle map for the given flags.
// The map is freshly allocated on every call.
func Toggles(f flagset.Set) map[string]bool {
	f = f.Normalized()

	out := make(map[string]bool, len(staticToggles)+len(moduleToggles)+24)
	for k, v := range staticToggles {
		out[k] = v
	}
	for _, k := range moduleToggles {
		out[k] = true
	}

	out["BUILD_SHARED_LIBS"] = f.Shared
	out["ITK_BUILD_SHARED"] = f.Shared

	if f.WithGDCM {
		out["ITK_USE_SYSTEM_GDCM"] = true
		out["GDCM_USE_SYSTEM_OPENJPEG"] = true
	}
	out["Module_ITKIOGDCM"] = f.WithGDCM

	if f.WithDCMTK {
		out["ITK_USE_SYSTEM_DCMTK"] = true
		out["Module_ITKDCMTK"] = true
		out["Module_ITKIODCMTK"] = true
		out["DCMTK_USE_ICU"] = f.DCMTKCharset == "icu"
	}

	out["Module_IOScanco"] = f.WithScanco
	out["Module_ITKCudaCommon"] = f.WithCUDA

	out["Module_RTK"] = f.WithRTK
	if f.WithRTK {
		out["RTK_BUILD_APPLICATIONS"] = false
		out["RTK_USE_CUDA"] = f.WithCUDA
	}

	for _, k := range gpuModuleToggles {
		out[k] = f.WithGPU
	}

	if f.WithElastix {
		out["ELASTIX_USE_OPENCL"] = f.WithGPU
		out["ELASTIX_USE_EIGEN"] = true
		out["ELASTIX_USE_OPENMP"] = true
	}

	out["ITK_WRAP_PYTHON"] = f.BindingsEnabled()

	return out
}
