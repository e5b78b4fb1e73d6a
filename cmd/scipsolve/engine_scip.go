//go:build scip

package main

import _ "github.com/bartolsthoorn/goscip/internal/native/scipc"
