package main

import (
	"github.com/docstr-labs/docstr/internal/lintdocstr"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(lintdocstr.Analyzer)
}
