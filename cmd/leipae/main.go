// Leipae plays the falling-bread shader show.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Cadiac/leipae"
	"github.com/Cadiac/leipae/player"
)

func main() {
	scriptPtr := flag.String("script", "", "YAML scene script (default: built-in show)")
	dumpPtr := flag.Bool("dump-script", false, "print the effective scene script as YAML and exit")
	shaderPtr := flag.String("shader", "", "Kage shader template to load and hot reload with L (default: built-in)")
	musicPtr := flag.String("music", "", "MP3 soundtrack played in step with the show")
	autopilotPtr := flag.String("autopilot", "", "JSON command script to drive the show unattended")
	widthPtr := flag.Int("width", 1920, "window width")
	heightPtr := flag.Int("height", 1080, "window height")
	windowedPtr := flag.Bool("windowed", false, "start in a window instead of fullscreen")
	debugPtr := flag.Bool("debug", false, "log scene changes and show the overlay")
	shotsPtr := flag.String("screenshots", player.DefaultScreenshotDir, "screenshot directory")
	flag.Parse()

	script := leipae.DefaultScript()
	if *scriptPtr != "" {
		s, err := leipae.LoadScript(*scriptPtr)
		if err != nil {
			log.Fatalf("load script: %v", err)
		}
		script = s
	}

	if *dumpPtr {
		data, err := leipae.MarshalScript(script)
		if err != nil {
			log.Fatalf("dump script: %v", err)
		}
		fmt.Print(string(data))
		os.Exit(0)
	}

	var pilot *leipae.Autopilot
	if *autopilotPtr != "" {
		data, err := os.ReadFile(*autopilotPtr)
		if err != nil {
			log.Fatalf("read autopilot: %v", err)
		}
		pilot, err = leipae.LoadAutopilot(data)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	demo, err := leipae.NewDemo(script)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := player.Run(demo, player.RunConfig{
		Title:          "Leipae",
		Width:          *widthPtr,
		Height:         *heightPtr,
		Fullscreen:     !*windowedPtr,
		Debug:          *debugPtr,
		ShaderPath:     *shaderPtr,
		SoundtrackPath: *musicPtr,
		ScreenshotDir:  *shotsPtr,
		Autopilot:      pilot,
	}); err != nil {
		log.Fatal(err)
	}
}
