// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package motion is a container for motion sensing drivers and the tools to
// visualize what they sense.
package motion
