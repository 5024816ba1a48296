// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Feature indexes one flag in a FeatureSet. The order mirrors the
// external API's feature structure and must never change, since a
// FeatureSet is exchanged with callers positionally.
type Feature int

const (
	FeatureRobustBufferAccess Feature = iota
	FeatureFullDrawIndexUint32
	FeatureImageCubeArray
	FeatureIndependentBlend
	FeatureGeometryShader
	FeatureTessellationShader
	FeatureSampleRateShading
	FeatureDualSrcBlend
	FeatureLogicOp
	FeatureMultiDrawIndirect
	FeatureDrawIndirectFirstInstance
	FeatureDepthClamp
	FeatureDepthBiasClamp
	FeatureFillModeNonSolid
	FeatureDepthBounds
	FeatureWideLines
	FeatureLargePoints
	FeatureAlphaToOne
	FeatureMultiViewport
	FeatureSamplerAnisotropy
	FeatureTextureCompressionETC2
	FeatureTextureCompressionASTCLDR
	FeatureTextureCompressionBC
	FeatureOcclusionQueryPrecise
	FeaturePipelineStatisticsQuery
	FeatureVertexPipelineStoresAndAtomics
	FeatureFragmentStoresAndAtomics
	FeatureShaderTessellationAndGeometryPointSize
	FeatureShaderImageGatherExtended
	FeatureShaderStorageImageExtendedFormats
	FeatureShaderStorageImageMultisample
	FeatureShaderStorageImageReadWithoutFormat
	FeatureShaderStorageImageWriteWithoutFormat
	FeatureShaderUniformBufferArrayDynamicIndexing
	FeatureShaderSampledImageArrayDynamicIndexing
	FeatureShaderStorageBufferArrayDynamicIndexing
	FeatureShaderStorageImageArrayDynamicIndexing
	FeatureShaderClipDistance
	FeatureShaderCullDistance
	FeatureShaderFloat64
	FeatureShaderInt64
	FeatureShaderInt16
	FeatureShaderResourceResidency
	FeatureShaderResourceMinLod
	FeatureSparseBinding
	FeatureSparseResidencyBuffer
	FeatureSparseResidencyImage2D
	FeatureSparseResidencyImage3D
	FeatureSparseResidency2Samples
	FeatureSparseResidency4Samples
	FeatureSparseResidency8Samples
	FeatureSparseResidency16Samples
	FeatureSparseResidencyAliased
	FeatureVariableMultisampleRate
	FeatureInheritedQueries

	// NumFeatures is the fixed size of a FeatureSet.
	NumFeatures
)

// FeatureSet is a fixed-size ordered sequence of feature flags,
// indexed by Feature.
type FeatureSet [NumFeatures]bool

// Enabled reports whether f is set.
func (s *FeatureSet) Enabled(f Feature) bool { return s[f] }

// Set sets f to on and returns the receiver for chaining while
// building a request.
func (s *FeatureSet) Set(f Feature, on bool) *FeatureSet {
	s[f] = on
	return s
}

// supportedFeatures is the hardware-supported snapshot. VideoCore IV
// is a fixed-function-heavy GLES2-class part, so nearly everything
// stays off.
var supportedFeatures = func() FeatureSet {
	var s FeatureSet
	s[FeatureWideLines] = true
	s[FeatureLargePoints] = true
	s[FeatureAlphaToOne] = true
	s[FeatureOcclusionQueryPrecise] = true
	return s
}()

// SupportedFeatures returns a copy of the hardware-supported
// feature snapshot.
func SupportedFeatures() FeatureSet { return supportedFeatures }
