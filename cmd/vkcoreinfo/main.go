// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// vkcoreinfo opens the GPU, prints everything the driver front door
// can answer about it, and optionally archives the snapshot as a
// capdump file for offline diffing.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/vkcore/core"
	"github.com/devblok/vkcore/utility/capdump"
)

var (
	devicePath = flag.String("device", "", "DRM device node to probe (default: VKCORE_DEVICE_PATH or /dev/dri/card0)")
	outFile    = flag.String("o", "", "write a capdump archive instead of JSON on stdout")
	debugMode  = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()
	envy.Load()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}

	inst, res := core.CreateInstance(&core.InstanceCreateInfo{
		ApplicationName: "vkcoreinfo",
		EngineName:      "vkcore",
		DebugMode:       *debugMode,
		DevicePath:      *devicePath,
	})
	if err := res.Err(); err != nil {
		log.WithError(err).Fatal("instance creation failed")
	}
	defer inst.Destroy()

	report, err := capdump.Snapshot(inst)
	if err != nil {
		log.WithError(err).Fatal("capability snapshot failed")
	}

	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.WithError(err).Fatal("create dump file")
		}
		defer f.Close()
		written, err := capdump.Write(f, report)
		if err != nil {
			log.WithError(err).Fatal("write dump file")
		}
		log.WithFields(log.Fields{
			"file":  *outFile,
			"bytes": written,
		}).Info("capability dump written")
		return
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("encode report")
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
