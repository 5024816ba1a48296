// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "github.com/gobuffalo/envy"

// defaultDevicePath is the DRM node of the GPU on a stock system.
const defaultDevicePath = "/dev/dri/card0"

// DefaultDevicePath returns the DRM device node the instance probes
// when InstanceCreateInfo does not name one. Overridable with the
// VKCORE_DEVICE_PATH environment variable.
func DefaultDevicePath() string {
	return envy.Get("VKCORE_DEVICE_PATH", defaultDevicePath)
}
