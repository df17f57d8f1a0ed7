package main

import (
	"github.com/Ranakb/ai-document-system/internal/cli"
)

func main() {
	cli.Execute()
}
