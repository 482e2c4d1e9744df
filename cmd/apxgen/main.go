package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/autoee/apx-go/pkg/apx"
	"github.com/autoee/apx-go/pkg/logging"
	"github.com/autoee/apx-go/pkg/swc"
)

func main() {
	var (
		modelPath = flag.String("model", "model.yaml", "Component model YAML file")
		component = flag.String("component", "", "Component to convert (default: first in the model)")
		nodeName  = flag.String("name", "", "Override the generated node name")
		outDir    = flag.String("out", "", "Output directory ('' writes to stdout)")
		mirror    = flag.Bool("mirror", false, "Generate the mirrored peer node instead")
	)
	flag.Parse()

	logger := logging.NewDefaultLogger().With(
		logging.Component("apxgen"),
		logging.RunID(uuid.NewString()),
	)

	timer := logging.StartTimer(logger, "workspace loaded", logging.Path(*modelPath))
	ws, err := swc.Load(*modelPath)
	if err != nil {
		timer.EndError(err)
		log.Fatalf("❌ Failed to load component model: %v", err)
	}
	timer.End()

	comp := ws.Components[0]
	if *component != "" {
		comp = ws.FindComponent(*component)
		if comp == nil {
			log.Fatalf("❌ Component %q not found in %s", *component, *modelPath)
		}
	}

	node, err := apx.NewNodeFromComponent(ws, comp, *nodeName)
	if err != nil {
		logger.Error("import failed", logging.NodeName(comp.Name), logging.Error(err))
		log.Fatalf("❌ Failed to import component %q: %v", comp.Name, err)
	}
	if *mirror {
		node = node.Mirror("")
	}

	logger.Info("node imported",
		logging.NodeName(node.Name),
		logging.Count(len(node.DataTypes)),
		logging.Bool("mirror", *mirror),
	)

	if *outDir == "" {
		if err := node.Write(os.Stdout); err != nil {
			log.Fatalf("❌ Failed to write node: %v", err)
		}
		return
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}
	outPath := filepath.Join(*outDir, node.Name+".apx")
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("❌ Failed to create %s: %v", outPath, err)
	}
	defer f.Close()
	if err := node.Write(f); err != nil {
		log.Fatalf("❌ Failed to write %s: %v", outPath, err)
	}

	fmt.Printf("✅ Wrote %s\n", outPath)
	fmt.Printf("   Types:         %d\n", len(node.DataTypes))
	fmt.Printf("   Provide ports: %d\n", len(node.ProvidePorts))
	fmt.Printf("   Require ports: %d\n", len(node.RequirePorts))
}
