// Inspection tool for the Perch native-binding layer.
// Boots the runtime from perch.toml, verifies the generated pointer table
// against a generator manifest, and describes raw lazy tokens.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/perchlang/perch/config"
	"github.com/perchlang/perch/vm"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	configDir := flag.String("config", ".", "Directory containing perch.toml")
	manifestPath := flag.String("verify", "", "Verify the generated table against a manifest file")
	describe := flag.Int("describe", 0, "Describe a raw lazy token")
	describeSet := false
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "describe" {
			describeSet = true
		}
	})

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	rt := vm.NewGeneratedRuntime(cfg)
	table := rt.Natives()

	if *manifestPath != "" {
		m, err := vm.LoadManifestFile(*manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
			os.Exit(1)
		}
		if err := vm.VerifyManifest(table, m); err != nil {
			fmt.Fprintf(os.Stderr, "Manifest mismatch: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Manifest OK: %d generated bindings\n", table.Len())
		return
	}

	if describeSet {
		fmt.Println(rt.DescribeToken(int32(*describe)))
		return
	}

	fmt.Printf("Perch runtime %s\n", vm.Version)
	fmt.Printf("Generated bindings: %d\n", table.Len())
	for i := 0; i < table.Len(); i++ {
		fmt.Printf("  %4d  %s\n", table.TokenFor(i), table.Name(i))
	}
	fmt.Printf("Reserved tags: %s=%d %s=%d %s=%d\n",
		vm.StreamTagBlob, vm.StreamTagBlob,
		vm.StreamTagFile, vm.StreamTagFile,
		vm.StreamTagBytes, vm.StreamTagBytes)
	fmt.Printf("Checked dispatch: %v\n", cfg.Dispatch.Checked)
}
