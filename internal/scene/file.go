package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/spheretrace/pkg/math"
	"github.com/Faultbox/spheretrace/pkg/rgb"
)

// fileScene is the YAML layout of a scene description.
type fileScene struct {
	Spheres []fileSphere `yaml:"spheres"`
	Lights  []fileLight  `yaml:"lights"`
}

type fileSphere struct {
	Center    []float64 `yaml:"center,flow"`
	Radius    uint32    `yaml:"radius"`
	Color     string    `yaml:"color"`
	Shininess *int      `yaml:"shininess,omitempty"`
}

type fileLight struct {
	Type      string    `yaml:"type"`
	Intensity float64   `yaml:"intensity"`
	Position  []float64 `yaml:"position,flow,omitempty"`
	Direction []float64 `yaml:"direction,flow,omitempty"`
}

// Load reads and validates a scene description file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene description and validates the result.
func Parse(data []byte) (*Scene, error) {
	var fs fileScene
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, err
	}

	s := &Scene{
		Objects: make([]Sphere, 0, len(fs.Spheres)),
		Lights:  make([]Light, 0, len(fs.Lights)),
	}

	for i, fsp := range fs.Spheres {
		center, err := toVec3(fsp.Center)
		if err != nil {
			return nil, fmt.Errorf("spheres[%d].center: %w", i, err)
		}
		c, err := rgb.ParseHex(fsp.Color)
		if err != nil {
			return nil, fmt.Errorf("spheres[%d].color: %w: %v", i, ErrInvalidColor, err)
		}
		sp := Sphere{Center: center, Radius: fsp.Radius, Color: c}
		if fsp.Shininess != nil {
			sp.Shininess = Specular(*fsp.Shininess)
		}
		s.Objects = append(s.Objects, sp)
	}

	for i, fl := range fs.Lights {
		kind, err := ParseLightKind(fl.Type)
		if err != nil {
			return nil, fmt.Errorf("lights[%d]: %w", i, err)
		}
		l := Light{Kind: kind, Intensity: fl.Intensity}
		switch kind {
		case Point:
			if l.Position, err = toVec3(fl.Position); err != nil {
				return nil, fmt.Errorf("lights[%d].position: %w", i, err)
			}
		case Directional:
			if l.Direction, err = toVec3(fl.Direction); err != nil {
				return nil, fmt.Errorf("lights[%d].direction: %w", i, err)
			}
		}
		s.Lights = append(s.Lights, l)
	}

	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes s in the scene file format.
func Encode(s *Scene) ([]byte, error) {
	var fs fileScene
	for _, sp := range s.Objects {
		fsp := fileSphere{
			Center: fromVec3(sp.Center),
			Radius: sp.Radius,
			Color:  sp.Color.Hex(),
		}
		if sp.Shininess != nil {
			fsp.Shininess = Specular(*sp.Shininess)
		}
		fs.Spheres = append(fs.Spheres, fsp)
	}
	for _, l := range s.Lights {
		fl := fileLight{Type: l.Kind.String(), Intensity: l.Intensity}
		switch l.Kind {
		case Point:
			fl.Position = fromVec3(l.Position)
		case Directional:
			fl.Direction = fromVec3(l.Direction)
		}
		fs.Lights = append(fs.Lights, fl)
	}
	return yaml.Marshal(&fs)
}

func toVec3(c []float64) (math.Vec3, error) {
	if len(c) != 3 {
		return math.Vec3{}, fmt.Errorf("%w, got %d", ErrBadVector, len(c))
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func fromVec3(v math.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
