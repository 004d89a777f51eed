// Copyright (c) Peter Bjorklund. All rights reserved. https://github.com/piot/app-version
// Licensed under the MIT License. See LICENSE in the project root for license information.

package main

import (
	"log"

	"github.com/piot/app-version/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
