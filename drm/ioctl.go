// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package drm

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request encoding, the kernel's _IOWR layout: number in bits
// 0-7, type in 8-15, argument size in 16-29, direction in 30-31.
const (
	iocNrShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	iocWrite = 1
	iocRead  = 2
)

// iowr builds a read-write ioctl request.
func iowr(typ, nr, size uintptr) uintptr {
	return (iocRead|iocWrite)<<iocDirShift |
		typ<<iocTypeShift |
		nr<<iocNrShift |
		size<<iocSizeShift
}

// DRM driver-private commands start at this offset within the DRM
// ioctl type ('d').
const (
	drmIoctlType   = 'd'
	drmCommandBase = 0x40
)

// VC4 driver-private command numbers.
const (
	vc4CmdGetParam  = 0x07
	vc4CmdGetTiling = 0x09
)

// VC4_GET_PARAM parameter ids.
const (
	paramV3DIdent0          = 0
	paramV3DIdent1          = 1
	paramV3DIdent2          = 2
	paramSupportsBranches   = 3
	paramSupportsETC1       = 4
	paramSupportsThreadedFS = 5
	paramSupportsFixedRCL   = 6
	paramSupportsMadvise    = 7
)

// Argument layouts of the VC4 ioctls used here. Field order and
// sizes match the kernel UAPI structs.
type vc4GetParam struct {
	Param uint32
	Pad   uint32
	Value uint64
}

type vc4GetTiling struct {
	Handle   uint32
	Flags    uint32
	Modifier uint64
}

var (
	ioctlVC4GetParam  = iowr(drmIoctlType, drmCommandBase+vc4CmdGetParam, unsafe.Sizeof(vc4GetParam{}))
	ioctlVC4GetTiling = iowr(drmIoctlType, drmCommandBase+vc4CmdGetTiling, unsafe.Sizeof(vc4GetTiling{}))
)

// ioctl issues a request against fd, retrying on EINTR the way
// libdrm does.
func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
		if errno == 0 {
			return nil
		}
		if errno != unix.EINTR && errno != unix.EAGAIN {
			return errno
		}
	}
}
