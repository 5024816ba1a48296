// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package drm wraps the VC4 DRM device node behind the stateless
// query surface the core package consumes at instance creation:
// open, a handful of capability ioctls, close. Nothing here touches
// command submission or buffer objects.
package drm

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// V3D identity register layout: the low three bytes of IDENT0 spell
// "V3D", the top byte is the technology version. The low nibble of
// IDENT1 carries the revision.
const (
	v3dIdentMagic = 0x443356 // "V3D" little endian
)

// Probe is an open capability-query handle on a VC4 DRM node. It
// implements core.Prober. One Probe backs one driver instance and is
// closed when that instance is destroyed.
type Probe struct {
	fd   int
	path string
}

// Open opens the DRM device node at path for capability queries.
func Open(path string) (*Probe, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("drm: open %s: %w", path, err)
	}
	return &Probe{fd: fd, path: path}, nil
}

// Path returns the device node this probe was opened on.
func (p *Probe) Path() string { return p.path }

// Close releases the device node. Closing twice is harmless.
func (p *Probe) Close() error {
	if p.fd < 0 {
		return nil
	}
	err := unix.Close(p.fd)
	p.fd = -1
	if err != nil {
		return fmt.Errorf("drm: close %s: %w", p.path, err)
	}
	return nil
}

// getParam issues VC4_GET_PARAM for one parameter id.
func (p *Probe) getParam(param uint32) (uint64, error) {
	arg := vc4GetParam{Param: param}
	if err := ioctl(p.fd, ioctlVC4GetParam, unsafe.Pointer(&arg)); err != nil {
		return 0, fmt.Errorf("drm: VC4_GET_PARAM(%d) on %s: %w", param, p.path, err)
	}
	return arg.Value, nil
}

// hasFeature reads one of the boolean feature parameters.
func (p *Probe) hasFeature(param uint32) (bool, error) {
	v, err := p.getParam(param)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ChipVersion reads the V3D identity registers and decodes the
// hardware version, e.g. 21 for a V3D 2.1 part. A node whose IDENT0
// does not carry the V3D magic is not the GPU this driver is for.
func (p *Probe) ChipVersion() (uint32, error) {
	ident0, err := p.getParam(paramV3DIdent0)
	if err != nil {
		return 0, err
	}
	ident1, err := p.getParam(paramV3DIdent1)
	if err != nil {
		return 0, err
	}
	return decodeChipVersion(ident0, ident1)
}

// decodeChipVersion validates the IDENT0 magic and combines the
// technology version with the IDENT1 revision nibble.
func decodeChipVersion(ident0, ident1 uint64) (uint32, error) {
	if ident0&0xffffff != v3dIdentMagic {
		return 0, fmt.Errorf("drm: not a V3D core (IDENT0 %#x)", ident0)
	}
	tech := uint32(ident0 >> 24 & 0xff)
	rev := uint32(ident1 & 0xf)
	return tech*10 + rev, nil
}

// TilingSupported reports whether the kernel knows the tiling
// ioctls. The query asks GET_TILING about a buffer object that does
// not exist: a kernel with tiling support answers ENOENT for the
// bogus handle, one without answers EINVAL for the unknown ioctl.
func (p *Probe) TilingSupported() (bool, error) {
	var arg vc4GetTiling
	err := ioctl(p.fd, ioctlVC4GetTiling, unsafe.Pointer(&arg))
	switch err {
	case nil, unix.ENOENT:
		return true, nil
	case unix.EINVAL:
		return false, nil
	}
	return false, fmt.Errorf("drm: VC4_GET_TILING on %s: %w", p.path, err)
}

// ControlFlowSupported reports shader branch support.
func (p *Probe) ControlFlowSupported() (bool, error) {
	return p.hasFeature(paramSupportsBranches)
}

// ETC1Supported reports ETC1 texture support.
func (p *Probe) ETC1Supported() (bool, error) {
	return p.hasFeature(paramSupportsETC1)
}

// ThreadedFSSupported reports threaded fragment shader support.
func (p *Probe) ThreadedFSSupported() (bool, error) {
	return p.hasFeature(paramSupportsThreadedFS)
}

// MadviseSupported reports buffer-object madvise support.
func (p *Probe) MadviseSupported() (bool, error) {
	return p.hasFeature(paramSupportsMadvise)
}
