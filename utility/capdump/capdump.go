// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package capdump is a small on-disk format for GPU capability
// snapshots. A dump records everything the driver front door can
// answer about the hardware (identity, limits, extension registries,
// feature and probe snapshots), so reports taken on a device can be
// diffed or inspected away from it. The payload is gob encoded and
// lz4 compressed behind a fixed magic header.
package capdump

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"io"
	"time"

	"github.com/pierrec/lz4"

	"github.com/devblok/vkcore/core"
)

// package errors
var (
	ErrFileFormat = errors.New("capdump: corrupted or not a capability dump")
)

// Magic identifies a capability dump file.
const Magic = "VKCD"

// sizes relevant to the fixed header
const (
	magicLength      = 4
	sizeNumberLength = 8
)

// Report is the capability snapshot serialized into a dump.
type Report struct {
	DateCreated int64

	Device    core.PhysicalDeviceProperties
	Hardware  core.HardwareCapabilities
	Supported core.FeatureSet

	InstanceExtensions []core.ExtensionProperties
	DeviceExtensions   []core.ExtensionProperties
	QueueFamilies      []core.QueueFamilyProperties
}

// Snapshot assembles a Report from a live instance through the
// public query surface.
func Snapshot(inst *core.Instance) (*Report, error) {
	devs := make([]*core.PhysicalDevice, 1)
	if _, res := inst.EnumeratePhysicalDevices(devs); res.Err() != nil {
		return nil, res.Err()
	}
	pd := devs[0]

	report := Report{
		DateCreated: time.Now().Unix(),
		Device:      pd.Properties(),
		Hardware:    pd.HardwareCapabilities(),
		Supported:   pd.Features(),
	}

	count, res := core.EnumerateInstanceExtensionProperties("", nil)
	if res.Err() != nil {
		return nil, res.Err()
	}
	report.InstanceExtensions = make([]core.ExtensionProperties, count)
	if _, res := core.EnumerateInstanceExtensionProperties("", report.InstanceExtensions); res.Err() != nil {
		return nil, res.Err()
	}

	count, res = pd.EnumerateExtensionProperties("", nil)
	if res.Err() != nil {
		return nil, res.Err()
	}
	report.DeviceExtensions = make([]core.ExtensionProperties, count)
	if _, res := pd.EnumerateExtensionProperties("", report.DeviceExtensions); res.Err() != nil {
		return nil, res.Err()
	}

	report.QueueFamilies = make([]core.QueueFamilyProperties, pd.QueueFamilyProperties(nil))
	pd.QueueFamilyProperties(report.QueueFamilies)

	return &report, nil
}

// Write serializes the report to w and returns the number of bytes
// written.
func Write(w io.Writer, report *Report) (int64, error) {
	var payload bytes.Buffer
	zw := lz4.NewWriter(&payload)
	if err := gob.NewEncoder(zw).Encode(report); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}

	var written int64
	n, err := io.WriteString(w, Magic)
	written += int64(n)
	if err != nil {
		return written, err
	}
	size := make([]byte, sizeNumberLength)
	binary.LittleEndian.PutUint64(size, uint64(payload.Len()))
	n, err = w.Write(size)
	written += int64(n)
	if err != nil {
		return written, err
	}
	m, err := io.Copy(w, &payload)
	written += m
	return written, err
}

// Read parses a dump from r. It checks the file is actually a
// capability dump and returns an error when it is not.
func Read(r io.Reader) (*Report, error) {
	header := make([]byte, magicLength+sizeNumberLength)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, ErrFileFormat
	}
	if string(header[:magicLength]) != Magic {
		return nil, ErrFileFormat
	}
	size := binary.LittleEndian.Uint64(header[magicLength:])

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ErrFileFormat
	}

	var report Report
	zr := lz4.NewReader(bytes.NewReader(payload))
	if err := gob.NewDecoder(zr).Decode(&report); err != nil {
		return nil, ErrFileFormat
	}
	return &report, nil
}
