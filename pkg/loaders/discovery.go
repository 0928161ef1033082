package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ConfigInfo summarizes a render configuration found on disk
type ConfigInfo struct {
	Name   string // File name without extension
	Path   string
	Output string // GeneralConfig.FileNameRaytraced
	Width  int
	Height int
	Shapes int // Primitives the scene graph compiles to, before registry lookup
	Err    error
}

// DiscoverConfigs scans dir for *.json render configurations. Files that fail
// to parse are still listed, with Err set, so callers can report them.
func DiscoverConfigs(dir string) ([]ConfigInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to scan config directory: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan config directory: %w", err)
	}

	infos := make([]ConfigInfo, 0, len(files))
	for _, path := range files {
		info := ConfigInfo{
			Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Path: path,
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			info.Err = err
			infos = append(infos, info)
			continue
		}
		info.Output = cfg.Output
		info.Width = cfg.Description.Plane.Width
		info.Height = cfg.Description.Plane.Height
		if g := cfg.Description.Graph; g != nil {
			for _, n := range g.Nodes {
				if n.IsLeaf() {
					info.Shapes++
				}
			}
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
