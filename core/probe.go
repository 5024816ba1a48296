// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Prober is the hardware boundary of the package. It wraps an open
// device node and answers the capability queries made exactly once at
// instance creation; the instance owns the prober afterwards and
// closes it on Destroy. The drm package provides the real
// implementation, tests inject fakes.
type Prober interface {
	// ChipVersion identifies the hardware revision, e.g. 21 for a
	// V3D 2.1 part.
	ChipVersion() (uint32, error)

	// TilingSupported reports whether the kernel driver can manage
	// tiled buffer layouts.
	TilingSupported() (bool, error)

	// The four independently reported kernel feature flags.
	ControlFlowSupported() (bool, error)
	ETC1Supported() (bool, error)
	ThreadedFSSupported() (bool, error)
	MadviseSupported() (bool, error)

	Close() error
}

// HardwareCapabilities is the immutable snapshot an instance caches
// from its prober.
type HardwareCapabilities struct {
	ChipVersion            uint32
	Tiling                 bool
	ControlFlow            bool
	ETC1                   bool
	ThreadedFragmentShader bool
	Madvise                bool
}

// probeHardware runs every capability query against p and assembles
// the snapshot. Any failing query fails the probe as a whole.
func probeHardware(p Prober) (HardwareCapabilities, error) {
	var (
		caps HardwareCapabilities
		err  error
	)
	if caps.ChipVersion, err = p.ChipVersion(); err != nil {
		return HardwareCapabilities{}, err
	}
	if caps.Tiling, err = p.TilingSupported(); err != nil {
		return HardwareCapabilities{}, err
	}
	if caps.ControlFlow, err = p.ControlFlowSupported(); err != nil {
		return HardwareCapabilities{}, err
	}
	if caps.ETC1, err = p.ETC1Supported(); err != nil {
		return HardwareCapabilities{}, err
	}
	if caps.ThreadedFragmentShader, err = p.ThreadedFSSupported(); err != nil {
		return HardwareCapabilities{}, err
	}
	if caps.Madvise, err = p.MadviseSupported(); err != nil {
		return HardwareCapabilities{}, err
	}
	return caps, nil
}
