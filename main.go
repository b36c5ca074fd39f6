// SPDX-FileCopyrightText: 2018 - 2022 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/linuxdeepin/go-lib/log"

	"github.com/linuxdeepin/xdpyprobe/display"
)

var logger = log.NewLogger("xdpyprobe")

func doSetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
	display.SetLogLevel(level)
}

// report writes one diagnostic line to standard output.
func report(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, "DEBUG: "+format+"\n", args...)
}

// fail writes one diagnostic line to standard error and terminates the
// process with exit status 1.
func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Oops: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	if os.Getenv("XDPYPROBE_DEBUG") != "" {
		doSetLogLevel(log.LevelDebug)
	}

	conn, err := display.Open("")
	if err != nil {
		logger.Debug("open display failed:", err)
		fail("Failed to open display 0")
	}
	defer conn.Close()

	report("%s", conn.Handle())
}
