package cad_test

import (
	"context"
	"fmt"

	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/cad/memory"
	"github.com/cadkit/cadkit/pkg/geom"
)

func ExampleClient_RepeatBlockHorizontally() {
	ctx := context.Background()

	doc := memory.NewDocument()
	doc.DefineBlock(memory.BlockDef{Name: "brick", Length: 10})

	client := cad.NewClient(doc)
	handles, err := client.RepeatBlockHorizontally(ctx, "brick", 95, 10, geom.P2(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	points, _ := client.BlockCoordinates(ctx, "brick")
	fmt.Println("inserted:", len(handles))
	fmt.Println("first:", points[0])
	fmt.Println("last:", points[len(points)-1])
	// Output:
	// inserted: 9
	// first: (0, 0, 0)
	// last: (80, 0, 0)
}

func ExampleClient_CreateStandardLayers() {
	ctx := context.Background()
	client := cad.NewClient(memory.NewDocument())

	if err := client.CreateStandardLayers(ctx, nil); err != nil {
		fmt.Println("error:", err)
		return
	}

	layers, _ := client.Layers(ctx)
	for _, l := range layers[:3] {
		fmt.Printf("%s (%s)\n", l.Name, l.Color)
	}
	// Output:
	// 0 (white)
	// Centerlines (red)
	// Dimensions (green)
}
