// Command meshinfo loads an OBJ mesh and prints its bounds, and optionally the
// signed distance from a point, as JSON or YAML.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xernobyl/ionmath/mat"
	"github.com/xernobyl/ionmath/mesh"
	"github.com/xernobyl/ionmath/vec"
)

var rePoint = regexp.MustCompile(`^\s*(-?[\d.eE+-]+)\s*,\s*(-?[\d.eE+-]+)\s*,\s*(-?[\d.eE+-]+)\s*$`)

type report struct {
	Vertices     int       `json:"vertices" yaml:"vertices"`
	Triangles    int       `json:"triangles" yaml:"triangles"`
	BoundingMin  vec.Vec3d `json:"bounding_box_min" yaml:"bounding_box_min"`
	BoundingMax  vec.Vec3d `json:"bounding_box_max" yaml:"bounding_box_max"`
	Centroid     vec.Vec3d `json:"centroid" yaml:"centroid"`
	Inverted     int       `json:"inverted_triangles,omitempty" yaml:"inverted_triangles,omitempty"`
	Disconnected int       `json:"disconnected_triangles,omitempty" yaml:"disconnected_triangles,omitempty"`
	Distance     *float64  `json:"distance,omitempty" yaml:"distance,omitempty"`
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("meshinfo failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, logger *zap.Logger) error {
	flags := flag.NewFlagSet("meshinfo", flag.ContinueOnError)
	filePath := flags.String("file", "", ".obj file path")
	scale := flags.Float64("scale", 1, "Uniform scale applied to the mesh")
	point := flags.String("point", "", "Point to measure the signed distance from, as x,y,z")
	format := flags.String("format", "json", "Output format, json or yaml")
	check := flags.Bool("check", false, "Check triangle winding before continuing")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *filePath == "" {
		return errors.New("missing -file")
	}

	if *format != "json" && *format != "yaml" {
		return fmt.Errorf("output format must be \"json\" or \"yaml\", got %q", *format)
	}

	var p *vec.Vec3d
	if *point != "" {
		v, err := parsePoint(*point)
		if err != nil {
			return err
		}
		p = &v
	}

	file, err := os.Open(*filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	logger.Info("loading mesh", zap.String("file", *filePath))
	m, err := mesh.LoadOBJ(file, mesh.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("loading %s: %w", *filePath, err)
	}

	if *scale != 1 {
		m.Transform(mat.Scaling(*scale, *scale, *scale))
	}

	r := report{
		Vertices:    len(m.Vertices),
		Triangles:   len(m.Triangles),
		BoundingMin: m.Min,
		BoundingMax: m.Max,
		Centroid:    vec.Centroid[float64](m.Vertices),
	}

	if *check {
		winding, err := m.CheckWinding(ctx)
		if err != nil {
			return err
		}
		r.Inverted = len(winding.Inverted)
		r.Disconnected = len(winding.Disconnected)
	}

	if p != nil {
		d := m.ClosestDistance(*p)
		r.Distance = &d
	}

	if *format == "yaml" {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(r)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func parsePoint(s string) (vec.Vec3d, error) {
	matches := rePoint.FindStringSubmatch(s)
	if matches == nil {
		return vec.Vec3d{}, fmt.Errorf("invalid point %q, want x,y,z", s)
	}

	var p vec.Vec3d
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(matches[i+1], 64)
		if err != nil {
			return vec.Vec3d{}, fmt.Errorf("invalid point %q: %w", s, err)
		}
		p[i] = f
	}

	return p, nil
}
