package component

// The canonical component table. This is data, not code: the entries
// below enumerate every component the toolkit can expose, in the
// stable order downstream metadata is emitted in. Conditional
// inclusion and conditional extra dependencies live in rules.go, never
// here.
//
// System libraries that depend on the target platform (libm on POSIX)
// are attached by rules, so table entries stay platform-neutral.

// dicomTable holds the DCMTK-backed DICOM I/O component.
var dicomTable = []Component{
	{Name: "ITKIODCMTK", Requires: []Ref{"ITKIOImageBase", "dcmtk::dcmtk"}},
}

// rtkTable holds the reconstruction-toolkit remote module. RTK bundles
// its own lpsolve build and exposes an extra include directory for it.
var rtkTable = []Component{
	{
		Name:     "itkRTK",
		Libs:     []string{"lpsolve55"},
		Includes: []string{"include/RTK/lpsolve"},
	},
}

// scancoTable holds the Scanco microCT I/O remote module.
var scancoTable = []Component{
	{Name: "IOScanco"},
}

// gdcmTable holds the GDCM-backed DICOM I/O component.
var gdcmTable = []Component{
	{Name: "ITKIOGDCM", Requires: []Ref{"ITKCommon", "ITKIOImageBase", "gdcm::gdcmDICT", "gdcm::gdcmMSFF"}},
}

// elastixTable holds the Elastix registration toolkit module.
var elastixTable = []Component{
	{Name: "ITKElastix", Requires: []Ref{"ITKCommon", "ITKRegistrationCommon"}},
}

// cudaTable holds the CUDA support component.
var cudaTable = []Component{
	{Name: "ITKCudaCommon", Requires: []Ref{"ITKCommon"}},
}

// gpuTable holds the OpenCL-accelerated component family.
var gpuTable = []Component{
	{Name: "ITKGPUImageFilterBase", Requires: []Ref{"ITKCommon"}},
	{Name: "ITKGPUAnisotropicSmoothing", Requires: []Ref{"ITKGPUImageFilterBase", "ITKSmoothing"}},
	{Name: "ITKGPUSmoothing", Requires: []Ref{"ITKGPUImageFilterBase", "ITKSmoothing"}},
	{Name: "ITKGPUThresholding", Requires: []Ref{"ITKGPUImageFilterBase"}},
	{Name: "ITKGPURegistrationCommon", Requires: []Ref{"ITKGPUImageFilterBase", "ITKRegistrationCommon"}},
	{Name: "ITKGPUPDEDeformableRegistration", Requires: []Ref{"ITKGPURegistrationCommon", "ITKPDEDeformableRegistration"}},
}

// baseTable holds the mandatory components, present in every graph.
var baseTable = []Component{
	{Name: "itksys"},
	{Name: "itkvcl"},
	{Name: "itkv3p_netlib"},
	{Name: "itkvnl", Requires: []Ref{"itkvcl"}},
	{Name: "itkvnl_algo", Requires: []Ref{"itkv3p_netlib", "itkvnl"}},
	{Name: "itktestlib", Requires: []Ref{"itkvcl"}},
	{Name: "ITKVNLInstantiation", Requires: []Ref{"itkvnl_algo", "itkvnl", "itkv3p_netlib", "itkvcl"}},
	{Name: "ITKCommon", Requires: []Ref{
		"itksys", "ITKVNLInstantiation", "eigen::eigen",
		"onetbb::onetbb", "double-conversion::double-conversion",
	}},
	{Name: "itkNetlibSlatec", Requires: []Ref{"itkv3p_netlib"}},
	{Name: "ITKStatistics", Requires: []Ref{"ITKCommon", "itkNetlibSlatec"}},
	{Name: "ITKTransform", Requires: []Ref{"ITKCommon"}},
	{Name: "ITKMesh", Requires: []Ref{"ITKTransform"}},
	{Name: "ITKMetaIO", Requires: []Ref{"zlib::zlib"}},
	{Name: "ITKSpatialObjects", Requires: []Ref{"ITKTransform", "ITKCommon", "ITKMesh"}},
	{Name: "ITKPath", Requires: []Ref{"ITKCommon"}},
	{Name: "ITKImageIntensity"},
	{Name: "ITKLabelMap", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform",
		"ITKSpatialObjects", "ITKPath",
	}},
	{Name: "ITKQuadEdgeMesh", Requires: []Ref{"ITKMesh"}},
	{Name: "ITKFastMarching"},
	{Name: "ITKIOImageBase", Requires: []Ref{"ITKCommon"}},
	{Name: "ITKSmoothing"},
	{Name: "ITKImageFeature", Requires: []Ref{"ITKSmoothing", "ITKSpatialObjects"}},
	{Name: "ITKOptimizers", Requires: []Ref{"ITKStatistics"}},
	{Name: "ITKPolynomials", Requires: []Ref{"ITKCommon"}},
	{Name: "ITKBiasCorrection", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform",
		"ITKSpatialObjects", "ITKPath",
	}},
	{Name: "ITKColormap"},
	{Name: "ITKFFT", Requires: []Ref{"ITKCommon", "fftw::fftw"}},
	{Name: "ITKConvolution", Requires: []Ref{
		"ITKFFT", "ITKCommon", "ITKStatistics", "ITKTransform",
		"ITKSpatialObjects", "ITKPath",
	}},
	{Name: "ITKDICOMParser"},
	{Name: "ITKDeformableMesh", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform", "ITKImageFeature",
		"ITKSpatialObjects", "ITKPath", "ITKMesh",
	}},
	{Name: "ITKDenoising"},
	{Name: "ITKDiffusionTensorImage"},
	{Name: "ITKIOXML", Requires: []Ref{"ITKIOImageBase", "expat::expat"}},
	{Name: "ITKIOSpatialObjects", Requires: []Ref{"ITKSpatialObjects", "ITKIOXML", "ITKMesh"}},
	{Name: "ITKFEM", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform",
		"ITKSpatialObjects", "ITKPath",
		"ITKSmoothing", "ITKImageFeature", "ITKOptimizers", "ITKMetaIO",
	}},
	{Name: "ITKPDEDeformableRegistration", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform",
		"ITKSpatialObjects", "ITKPath", "ITKSmoothing",
		"ITKImageFeature", "ITKOptimizers",
	}},
	{Name: "ITKFEMRegistration", Requires: []Ref{
		"ITKFEM", "ITKImageFeature", "ITKCommon", "ITKSpatialObjects",
		"ITKTransform", "ITKPDEDeformableRegistration",
	}},
	{Name: "ITKznz", Requires: []Ref{"zlib::zlib"}},
	{Name: "ITKniftiio", Requires: []Ref{"ITKznz"}},
	{Name: "ITKgiftiio", Requires: []Ref{"ITKznz", "ITKniftiio", "expat::expat"}},
	{Name: "ITKImageGrid"},
	{Name: "ITKIOBMP", Requires: []Ref{"ITKIOImageBase"}},
	{Name: "ITKIOBioRad", Requires: []Ref{"ITKIOImageBase"}},
	{Name: "ITKIOCSV", Requires: []Ref{"ITKIOImageBase"}},
	{Name: "ITKIOIPL", Requires: []Ref{"ITKIOImageBase"}},
	{Name: "ITKIOGE", Requires: []Ref{"ITKIOIPL", "ITKIOImageBase"}},
	{Name: "ITKIOGIPL", Requires: []Ref{"ITKIOImageBase", "zlib::zlib"}},
	{Name: "ITKIOHDF5", Requires: []Ref{"ITKIOImageBase", "hdf5::hdf5"}},
	{Name: "ITKIOJPEG", Requires: []Ref{"ITKIOImageBase", "libjpeg::libjpeg"}},
	{Name: "ITKIOMeshBase", Requires: []Ref{
		"ITKCommon", "ITKIOImageBase", "ITKMesh", "ITKQuadEdgeMesh",
	}},
	{Name: "ITKIOMeshBYU", Requires: []Ref{"ITKCommon", "ITKIOMeshBase"}},
	{Name: "ITKIOMeshFreeSurfer", Requires: []Ref{"ITKCommon", "ITKIOMeshBase"}},
	{Name: "ITKIOMeshGifti", Requires: []Ref{"ITKCommon", "ITKIOMeshBase", "ITKgiftiio"}},
	{Name: "ITKIOMeshOBJ", Requires: []Ref{"ITKCommon", "ITKIOMeshBase"}},
	{Name: "ITKIOMeshOFF", Requires: []Ref{"ITKCommon", "ITKIOMeshBase"}},
	{Name: "ITKIOMeshVTK", Requires: []Ref{"ITKCommon", "ITKIOMeshBase", "double-conversion::double-conversion"}},
	{Name: "ITKIOMeta", Requires: []Ref{"ITKIOImageBase", "ITKMetaIO"}},
	{Name: "ITKIONIFTI", Requires: []Ref{"ITKIOImageBase", "ITKznz", "ITKniftiio", "ITKTransform"}},
	{Name: "ITKNrrdIO", Requires: []Ref{"zlib::zlib"}},
	{Name: "ITKIONRRD", Requires: []Ref{"ITKIOImageBase", "ITKNrrdIO"}},
	{Name: "ITKIOPNG", Requires: []Ref{"ITKIOImageBase", "libpng::libpng"}},
	{Name: "ITKIOPhilipsREC", Requires: []Ref{"zlib::zlib"}},
	{Name: "ITKIOSiemens", Requires: []Ref{"ITKIOImageBase", "ITKIOIPL"}},
	{Name: "ITKIOStimulate", Requires: []Ref{"ITKIOImageBase"}},
	{Name: "ITKIOTIFF", Requires: []Ref{"ITKIOImageBase", "libtiff::libtiff"}},
	{Name: "ITKTransformFactory", Requires: []Ref{"ITKCommon", "ITKTransform"}},
	{Name: "ITKIOTransformBase", Requires: []Ref{"ITKCommon", "ITKTransform", "ITKTransformFactory"}},
	{Name: "ITKIOTransformHDF5", Requires: []Ref{"ITKIOTransformBase", "hdf5::hdf5"}},
	{Name: "ITKIOTransformInsightLegacy", Requires: []Ref{"ITKIOTransformBase", "double-conversion::double-conversion"}},
	{Name: "ITKIOTransformMatlab", Requires: []Ref{"ITKIOTransformBase"}},
	{Name: "ITKIOVTK", Requires: []Ref{"ITKIOImageBase"}},
	{Name: "ITKKLMRegionGrowing", Requires: []Ref{"ITKCommon"}},
	{Name: "itklbfgs"},
	{Name: "ITKMarkovRandomFieldsClassifiers", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform",
		"ITKSpatialObjects", "ITKPath",
	}},
	{Name: "ITKOptimizersv4", Requires: []Ref{"ITKOptimizers", "itklbfgs"}},
	{Name: "itkopenjpeg", Libs: []string{"itkopenjpeg"}},
	{Name: "ITKQuadEdgeMeshFiltering", Requires: []Ref{"ITKMesh"}},
	{Name: "ITKRegionGrowing", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform",
		"ITKSpatialObjects", "ITKPath",
	}},
	{Name: "ITKRegistrationMethodsv4", Requires: []Ref{
		"ITKCommon", "ITKOptimizersv4", "ITKStatistics", "ITKTransform",
		"ITKSpatialObjects", "ITKPath", "ITKSmoothing", "ITKImageFeature",
		"ITKOptimizers",
	}},
	{Name: "ITKVTK", Requires: []Ref{"ITKCommon"}},
	{Name: "ITKWatersheds", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform", "ITKSpatialObjects",
		"ITKPath", "ITKSmoothing",
	}},
	{Name: "ITKRegistrationCommon"},
	// ITKReview and ITKTestKernel additionally require ITKIOGDCM when
	// the GDCM backend is enabled; see the "gdcm-review" rule.
	{Name: "ITKReview", Requires: []Ref{
		"ITKCommon", "ITKStatistics", "ITKTransform", "ITKLabelMap",
		"ITKSpatialObjects", "ITKPath", "ITKFastMarching", "ITKIOImageBase",
		"ITKImageFeature", "ITKOptimizers", "ITKBiasCorrection",
		"ITKDeformableMesh", "ITKDiffusionTensorImage", "ITKSmoothing",
		"ITKFFT", "ITKIOBMP", "ITKIOBioRad", "ITKIOGE",
		"ITKIOGIPL", "ITKIOIPL", "ITKIOJPEG", "ITKIOMeta", "ITKIONIFTI",
		"ITKIONRRD", "ITKIOPNG", "ITKIOSiemens", "ITKIOStimulate", "ITKIOTIFF",
		"ITKIOTransformHDF5", "ITKIOTransformInsightLegacy",
		"ITKIOTransformMatlab", "ITKIOVTK", "ITKIOXML", "ITKKLMRegionGrowing",
		"ITKMarkovRandomFieldsClassifiers", "ITKMesh", "ITKPDEDeformableRegistration",
		"ITKPolynomials", "ITKQuadEdgeMesh", "ITKQuadEdgeMeshFiltering",
		"ITKRegionGrowing", "ITKVTK", "ITKWatersheds", "itkopenjpeg",
	}},
	{Name: "ITKTestKernel", Requires: []Ref{
		"ITKCommon", "ITKIOImageBase", "ITKIOBMP", "ITKIOGIPL",
		"ITKIOJPEG", "ITKIOMeshBYU", "ITKIOMeshFreeSurfer", "ITKIOMeshGifti",
		"ITKIOMeshOBJ", "ITKIOMeshOFF", "ITKIOMeshVTK", "ITKIOMeta", "ITKIONIFTI",
		"ITKIONRRD", "ITKIOPNG", "ITKIOTIFF", "ITKIOVTK",
	}},
	{Name: "ITKVideoCore", Requires: []Ref{"ITKCommon"}},
}
