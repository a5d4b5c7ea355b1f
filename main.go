// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/tabletalk/tenancy-service/cmd"

func main() {
	cmd.Execute()
}
