package main

import (
	"os"

	"github.com/ovn-org/ovn-fake-multinode/pkg/ipgen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
