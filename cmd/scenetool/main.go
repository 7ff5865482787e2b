// scenetool is a CLI utility for working with spheretrace scene files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/spheretrace/internal/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "validate", "check":
		err = cmdValidate(args, os.Stdout)
	case "info":
		err = cmdInfo(args, os.Stdout)
	case "dump-default", "dump":
		err = cmdDumpDefault(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scenetool - spheretrace scene file utility

Usage:
  scenetool <command> [options]

Commands:
  validate <scene.yaml>          Check a scene file and report every problem
  info <scene.yaml>              List spheres and lights
  dump-default [-o scene.yaml]   Write the built-in scene as YAML

Examples:
  scenetool dump-default -o demo.yaml
  scenetool validate demo.yaml
  scenetool info demo.yaml`)
}

func cmdValidate(args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: scenetool validate <scene.yaml>")
	}
	if _, err := scene.Load(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: ok\n", args[0])
	return nil
}

func cmdInfo(args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: scenetool info <scene.yaml>")
	}
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	printInfo(w, args[0], s)
	return nil
}

func printInfo(w io.Writer, name string, s *scene.Scene) {
	fmt.Fprintf(w, "Scene:   %s\n", name)
	fmt.Fprintf(w, "Spheres: %d\n", len(s.Objects))
	for i, sp := range s.Objects {
		shine := "matte"
		if sp.Shininess != nil {
			shine = fmt.Sprintf("shininess %d", *sp.Shininess)
		}
		fmt.Fprintf(w, "  [%d] center (%g, %g, %g) radius %d %s %s\n",
			i, sp.Center.X, sp.Center.Y, sp.Center.Z, sp.Radius, sp.Color.Hex(), shine)
	}

	fmt.Fprintf(w, "Lights:  %d\n", len(s.Lights))
	total := 0.0
	for i, l := range s.Lights {
		total += l.Intensity
		switch l.Kind {
		case scene.Ambient:
			fmt.Fprintf(w, "  [%d] %-11s %.2f\n", i, l.Kind, l.Intensity)
		case scene.Point:
			fmt.Fprintf(w, "  [%d] %-11s %.2f at (%g, %g, %g)\n", i, l.Kind, l.Intensity, l.Position.X, l.Position.Y, l.Position.Z)
		case scene.Directional:
			fmt.Fprintf(w, "  [%d] %-11s %.2f along (%g, %g, %g)\n", i, l.Kind, l.Intensity, l.Direction.X, l.Direction.Y, l.Direction.Z)
		}
	}
	fmt.Fprintf(w, "Total intensity: %.2f\n", total)
}

func cmdDumpDefault(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("dump-default", flag.ContinueOnError)
	out := fs.String("o", "", "Write to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := scene.Encode(scene.Default())
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", *out)
	return nil
}
