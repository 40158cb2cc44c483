// Command taxonomy inspects the upload taxonomy: list wizard options,
// resolve selections to collection names, and check the table for mistakes.
//
// Usage:
//
//	taxonomy categories
//	taxonomy provinces "Entry Test" MDCAT
//	taxonomy resolve --category School --province Punjab --class 9th --content-type PastPapers
//	taxonomy dump --format json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
