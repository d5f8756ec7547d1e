/*
 * main.go, part of molrx.
 *
 *
 * Copyright 2026 The molrx authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

// molrx applies reaction types to molecules. Molecules are read, and reactions
// written, in the line-delimited JSON of the chemjson package.
//
//	molrx rules
//	molrx run --rules HeterolyticCleavage,HomolyticCleavage --balance molecules.jsonl > reactions.jsonl
//
// Settings come from flags, then MOLRX_* environment variables, then an optional
// YAML file (--config), then defaults.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// Version is set at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
