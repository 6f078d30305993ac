package main

import (
	"flag"
	"fmt"
	"os"

	"dogcommunity_api/widget"
)

func main() {
	buildDir := flag.String("build", "build", "path to the compiled frontend build")
	outDir := flag.String("out", "widget", "output directory for the packaged widget")
	flag.Parse()

	if err := widget.Build(*buildDir, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "build-widget:", err)
		os.Exit(1)
	}

	fmt.Println("Widget built successfully!")
	fmt.Printf("Output: %s/%s\n", *outDir, widget.WidgetFileName)
	fmt.Printf("Embed code: %s/%s\n", *outDir, widget.EmbedCodeFileName)
}
