// Command cloudfx is a small terminal viewer to experiment with area cloud
// effects on a demo level.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/rlkit/cloudfx"
)

func main() {
	optRC := flag.String("rc", "", "path to rc file")
	optSeed := flag.Uint64("seed", 0, "random seed (0 means random)")
	optSchema := flag.Bool("schema", false, "print the JSON schema of rc options and exit")
	optDump := flag.Bool("dump", false, "print a text dump of the demo level after a few effects and exit")
	opt256colors := flag.Bool("x", false, "use xterm 256-color palette (solarized approximation)")
	flag.Parse()

	log.SetPrefix("cloudfx ")
	if *optSchema {
		data, err := cloudfx.SchemaJSON()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\n", data)
		return
	}
	cfg := cloudfx.DefaultConfig()
	if *optRC != "" {
		var err error
		cfg, err = cloudfx.LoadConfig(*optRC)
		if err != nil {
			log.Fatal(err)
		}
	}
	lg, err := cloudfx.NewDebugLogger(cfg)
	if err != nil {
		log.Fatalf("debug log: %v", err)
	}
	defer lg.Sync()
	seed := *optSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	w := cloudfx.NewWorld(cfg, cloudfx.NewRand(seed), lg)
	w.SetUIRand(cloudfx.NewRand(rand.Uint64()))
	w.Debuglog("new world, seed %d", seed)
	lvl := newLevel(w)
	if *optDump {
		lvl.demo()
		fmt.Print(w.DumpMap())
		fmt.Print(w.DumpActor(lvl.player))
		for _, e := range w.Logs.Entries {
			fmt.Println(e)
		}
		return
	}
	mode := colorMode16
	if *opt256colors {
		mode = colorMode256
	}
	md := newModel(w, lvl)
	app := gruid.NewApp(gruid.AppConfig{
		Driver: newDriver(mode),
		Model:  md,
	})
	if err := app.Start(context.Background()); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
