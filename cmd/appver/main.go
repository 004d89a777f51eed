// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package main

import (
	"github.com/piot/app-version/pkg/cli"
)

func main() {
	cli.Execute()
}
