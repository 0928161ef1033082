package loaders

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config is a loaded configuration file
type Config struct {
	Description scene.Description
	Output      string // Output image path, empty if not configured
	Parallel    bool
}

// file mirrors the on-disk JSON layout
type file struct {
	CameraConfig  *cameraJSON `json:"CameraConfig"`
	SceneConfig   sceneJSON   `json:"SceneConfig"`
	GeneralConfig generalJSON `json:"GeneralConfig"`
	PlaneConfig   planeJSON   `json:"PlaneConfig"`
}

type cameraJSON struct {
	Position triple  `json:"Position"`
	Target   triple  `json:"Target"`
	FOV      float64 `json:"FOV"`
}

type sceneJSON struct {
	WorldUpDirection triple          `json:"WorldUpDirection"`
	Shadows          bool            `json:"Shadows"`
	MaxDepth         int             `json:"MaxDepth"`
	BackgroundColor  triple          `json:"BackgroundColor"`
	AmbientLighting  triple          `json:"AmbientLighting"`
	SceneGraph       json.RawMessage `json:"SceneGraph"` // Inline node or path to a node file
	Lightings        lightingsJSON   `json:"Lightings"`
}

type lightingsJSON struct {
	PointLights       lightListJSON `json:"PointLights"`
	DirectionalLights lightListJSON `json:"DirectionalLights"`
}

type lightListJSON struct {
	Number              int      `json:"Number"`
	Positions           []triple `json:"Positions"`
	Directions          []triple `json:"Directions"`
	DiffuseIntensities  []triple `json:"DiffuseIntensities"`
	SpecularIntensities []triple `json:"SpecularIntensities"`
}

type generalJSON struct {
	FileNameRaytraced string `json:"FileNameRaytraced"`
	Parallel          bool   `json:"Parallel"`
}

type planeJSON struct {
	Width       int `json:"Width"`
	Height      int `json:"Height"`
	RayPerPixel int `json:"RayPerPixel"`
}

// NodeJSON is one scene graph node as stored on disk
type NodeJSON struct {
	Attributes     *AttributesJSON `json:"Attributes,omitempty"`
	Children       []NodeJSON      `json:"Children,omitempty"`
	Obj            string          `json:"Obj,omitempty"`
	Transformation string          `json:"Transformation,omitempty"`
}

// AttributesJSON is an attribute block as stored on disk
type AttributesJSON struct {
	Clr   triple  `json:"Clr"`
	Scale float64 `json:"Scale"`
	Mat   string  `json:"Mat,omitempty"`
	Txt   string  `json:"Txt,omitempty"`
}

// triple is a JSON array of three numbers
type triple []float64

func (t triple) vec() (core.Vec3, error) {
	if len(t) == 0 {
		return core.Vec3{}, nil
	}
	if len(t) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(t))
	}
	return core.NewVec3(t[0], t[1], t[2]), nil
}

func vecs(ts []triple) ([]core.Vec3, error) {
	out := make([]core.Vec3, len(ts))
	for i, t := range ts {
		v, err := t.vec()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// LoadConfig reads a configuration file. A SceneGraph given as a string is a
// path to a node file, resolved relative to the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a configuration document. Missing sections are left
// empty so that scene.Build reports them.
func ParseConfig(data []byte, baseDir string) (*Config, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	d := scene.Description{
		Shadows:  f.SceneConfig.Shadows,
		MaxDepth: f.SceneConfig.MaxDepth,
		Plane: scene.PlaneConfig{
			Width:           f.PlaneConfig.Width,
			Height:          f.PlaneConfig.Height,
			SamplesPerPixel: f.PlaneConfig.RayPerPixel,
		},
	}

	var errs []error
	field := func(name string, t triple, dst *core.Vec3) {
		v, err := t.vec()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		*dst = v
	}

	if c := f.CameraConfig; c != nil {
		d.Camera = &scene.CameraConfig{FOV: c.FOV}
		field("CameraConfig.Position", c.Position, &d.Camera.Position)
		field("CameraConfig.Target", c.Target, &d.Camera.Target)
	}
	field("SceneConfig.WorldUpDirection", f.SceneConfig.WorldUpDirection, &d.WorldUp)
	field("SceneConfig.BackgroundColor", f.SceneConfig.BackgroundColor, &d.Background)
	field("SceneConfig.AmbientLighting", f.SceneConfig.AmbientLighting, &d.Ambient)

	var err error
	if d.PointLights, err = pointLights(f.SceneConfig.Lightings.PointLights); err != nil {
		errs = append(errs, fmt.Errorf("PointLights: %w", err))
	}
	if d.DirectionalLights, err = directionalLights(f.SceneConfig.Lightings.DirectionalLights); err != nil {
		errs = append(errs, fmt.Errorf("DirectionalLights: %w", err))
	}

	if d.Graph, err = loadGraph(f.SceneConfig.SceneGraph, baseDir); err != nil {
		errs = append(errs, fmt.Errorf("SceneGraph: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &Config{
		Description: d,
		Output:      f.GeneralConfig.FileNameRaytraced,
		Parallel:    f.GeneralConfig.Parallel,
	}, nil
}

func pointLights(l lightListJSON) (scene.PointLights, error) {
	var (
		out scene.PointLights
		err error
	)
	out.Number = l.Number
	if out.Positions, err = vecs(l.Positions); err != nil {
		return out, fmt.Errorf("Positions: %w", err)
	}
	if out.DiffuseIntensities, err = vecs(l.DiffuseIntensities); err != nil {
		return out, fmt.Errorf("DiffuseIntensities: %w", err)
	}
	if out.SpecularIntensities, err = vecs(l.SpecularIntensities); err != nil {
		return out, fmt.Errorf("SpecularIntensities: %w", err)
	}
	return out, nil
}

func directionalLights(l lightListJSON) (scene.DirectionalLights, error) {
	var (
		out scene.DirectionalLights
		err error
	)
	out.Number = l.Number
	if out.Directions, err = vecs(l.Directions); err != nil {
		return out, fmt.Errorf("Directions: %w", err)
	}
	if out.DiffuseIntensities, err = vecs(l.DiffuseIntensities); err != nil {
		return out, fmt.Errorf("DiffuseIntensities: %w", err)
	}
	if out.SpecularIntensities, err = vecs(l.SpecularIntensities); err != nil {
		return out, fmt.Errorf("SpecularIntensities: %w", err)
	}
	return out, nil
}

// loadGraph accepts an inline node, a path to a node file, or nothing
func loadGraph(raw json.RawMessage, baseDir string) (*scene.Graph, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var path string
		if err := json.Unmarshal(raw, &path); err != nil {
			return nil, err
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return LoadSceneGraph(path)
	}

	var root NodeJSON
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	return BuildGraph(root)
}

// LoadSceneGraph reads a scene graph node file
func LoadSceneGraph(path string) (*scene.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene graph: %w", err)
	}
	var root NodeJSON
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse scene graph %s: %w", path, err)
	}
	return BuildGraph(root)
}

// BuildGraph stores a decoded node tree in a scene graph arena
func BuildGraph(root NodeJSON) (*scene.Graph, error) {
	g := scene.NewGraph()
	if err := addNode(g, scene.NoNode, root); err != nil {
		return nil, err
	}
	return g, nil
}

func addNode(g *scene.Graph, parent scene.NodeID, n NodeJSON) error {
	node := scene.Node{Shape: n.Obj, Transform: n.Transformation}
	if a := n.Attributes; a != nil {
		color, err := a.Clr.vec()
		if err != nil {
			return fmt.Errorf("Clr: %w", err)
		}
		node.Attributes = &scene.Attributes{Color: color, Scale: a.Scale, Material: a.Mat, Texture: a.Txt}
	}

	var id scene.NodeID
	if parent == scene.NoNode {
		id = g.Add(node)
	} else {
		id = g.AddChild(parent, node)
	}
	for _, child := range n.Children {
		if err := addNode(g, id, child); err != nil {
			return err
		}
	}
	return nil
}
