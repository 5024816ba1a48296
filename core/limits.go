// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Limits holds the implementation limits of the hardware. The values
// are process-wide constants queried by value; callers may keep the
// copy for as long as they like.
type Limits struct {
	MaxImageDimension1D   uint32
	MaxImageDimension2D   uint32
	MaxImageDimension3D   uint32
	MaxImageDimensionCube uint32
	MaxImageArrayLayers   uint32

	MaxTexelBufferElements uint32
	MaxUniformBufferRange  uint32
	MaxStorageBufferRange  uint32
	MaxPushConstantsSize   uint32

	MaxMemoryAllocationCount  uint32
	MaxSamplerAllocationCount uint32
	BufferImageGranularity    uint64

	MaxBoundDescriptorSets              uint32
	MaxPerStageDescriptorSamplers       uint32
	MaxPerStageDescriptorUniformBuffers uint32
	MaxPerStageDescriptorStorageBuffers uint32
	MaxPerStageDescriptorSampledImages  uint32
	MaxPerStageResources                uint32

	MaxVertexInputAttributes      uint32
	MaxVertexInputBindings        uint32
	MaxVertexInputAttributeOffset uint32
	MaxVertexInputBindingStride   uint32
	MaxVertexOutputComponents     uint32

	MaxFragmentInputComponents   uint32
	MaxFragmentOutputAttachments uint32

	MaxComputeWorkGroupCount [3]uint32
	MaxComputeWorkGroupSize  [3]uint32

	SubPixelPrecisionBits uint32
	SubTexelPrecisionBits uint32
	MipmapPrecisionBits   uint32

	MaxDrawIndexedIndexValue uint32
	MaxDrawIndirectCount     uint32

	MaxSamplerLodBias    float32
	MaxSamplerAnisotropy float32

	MaxViewports          uint32
	MaxViewportDimensions [2]uint32
	ViewportBoundsRange   [2]float32

	MinMemoryMapAlignment           uint32
	MinTexelBufferOffsetAlignment   uint64
	MinUniformBufferOffsetAlignment uint64
	MinStorageBufferOffsetAlignment uint64

	MaxFramebufferWidth  uint32
	MaxFramebufferHeight uint32
	MaxFramebufferLayers uint32
	MaxColorAttachments  uint32

	MaxSampleMaskWords          uint32
	TimestampComputeAndGraphics bool
	TimestampPeriod             float32

	PointSizeRange       [2]float32
	LineWidthRange       [2]float32
	PointSizeGranularity float32
	LineWidthGranularity float32

	DiscreteQueuePriorities uint32
	StrictLines             bool
	StandardSampleLocations bool

	OptimalBufferCopyOffsetAlignment   uint64
	OptimalBufferCopyRowPitchAlignment uint64
	NonCoherentAtomSize                uint64
}

// limits describes VideoCore IV: 2048px render targets, a single
// viewport, no geometry or compute stages worth advertising.
var limits = Limits{
	MaxImageDimension1D:   2048,
	MaxImageDimension2D:   2048,
	MaxImageDimension3D:   256,
	MaxImageDimensionCube: 2048,
	MaxImageArrayLayers:   256,

	MaxTexelBufferElements: 65536,
	MaxUniformBufferRange:  65536,
	MaxStorageBufferRange:  1 << 27,
	MaxPushConstantsSize:   128,

	MaxMemoryAllocationCount:  4096,
	MaxSamplerAllocationCount: 4000,
	BufferImageGranularity:    1,

	MaxBoundDescriptorSets:              4,
	MaxPerStageDescriptorSamplers:       16,
	MaxPerStageDescriptorUniformBuffers: 12,
	MaxPerStageDescriptorStorageBuffers: 4,
	MaxPerStageDescriptorSampledImages:  16,
	MaxPerStageResources:                44,

	MaxVertexInputAttributes:      8,
	MaxVertexInputBindings:        8,
	MaxVertexInputAttributeOffset: 2047,
	MaxVertexInputBindingStride:   2048,
	MaxVertexOutputComponents:     64,

	MaxFragmentInputComponents:   64,
	MaxFragmentOutputAttachments: 1,

	SubPixelPrecisionBits: 4,
	SubTexelPrecisionBits: 4,
	MipmapPrecisionBits:   4,

	MaxDrawIndexedIndexValue: 65535,
	MaxDrawIndirectCount:     1,

	MaxSamplerLodBias:    2,
	MaxSamplerAnisotropy: 1,

	MaxViewports:          1,
	MaxViewportDimensions: [2]uint32{2048, 2048},
	ViewportBoundsRange:   [2]float32{-4096, 4095},

	MinMemoryMapAlignment:           4096,
	MinTexelBufferOffsetAlignment:   16,
	MinUniformBufferOffsetAlignment: 256,
	MinStorageBufferOffsetAlignment: 256,

	MaxFramebufferWidth:  2048,
	MaxFramebufferHeight: 2048,
	MaxFramebufferLayers: 1,
	MaxColorAttachments:  1,

	MaxSampleMaskWords:          1,
	TimestampComputeAndGraphics: false,
	TimestampPeriod:             1000,

	PointSizeRange:       [2]float32{1, 512},
	LineWidthRange:       [2]float32{1, 32},
	PointSizeGranularity: 0.125,
	LineWidthGranularity: 0.125,

	DiscreteQueuePriorities: 1,
	StrictLines:             true,
	StandardSampleLocations: true,

	OptimalBufferCopyOffsetAlignment:   16,
	OptimalBufferCopyRowPitchAlignment: 16,
	NonCoherentAtomSize:                64,
}

// QueueFlags describes the kinds of work a queue family accepts.
type QueueFlags uint32

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// QueueFamilyProperties describes one queue family.
type QueueFamilyProperties struct {
	QueueFlags         QueueFlags
	QueueCount         uint32
	TimestampValidBits uint32

	MinImageTransferGranularity [3]uint32
}

// NumQueueFamilies is the fixed number of queue families this driver
// models. The hardware has a single submission path, so there is
// exactly one family, handling graphics and transfer work.
const NumQueueFamilies = 1

var queueFamilies = [NumQueueFamilies]QueueFamilyProperties{
	{
		QueueFlags:                  QueueGraphics | QueueTransfer,
		QueueCount:                  1,
		TimestampValidBits:          64,
		MinImageTransferGranularity: [3]uint32{1, 1, 1},
	},
}
