package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"StakeAdvisor/internal/model"

	"gopkg.in/yaml.v3"
)

// FileSource reads a pool snapshot written by an external indexer.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
// The document is either a list of pools or an object with a "pools" list.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string { return "file" }

type snapshot struct {
	Pools *[]model.PoolStats `json:"pools" yaml:"pools"`
}

func (f *FileSource) FetchPools(ctx context.Context) ([]model.PoolStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var pools []model.PoolStats
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		pools, err = decodeYAML(data)
	default:
		pools, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", f.Path, err)
	}
	return pools, nil
}

func decodeJSON(data []byte) ([]model.PoolStats, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty snapshot")
	}
	switch trimmed[0] {
	case '[':
		var list []model.PoolStats
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	case '{':
		var snap snapshot
		if err := json.Unmarshal(trimmed, &snap); err != nil {
			return nil, err
		}
		return snap.pools()
	default:
		return nil, fmt.Errorf("snapshot must be a list or an object, starts with %q", trimmed[0])
	}
}

func decodeYAML(data []byte) ([]model.PoolStats, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	switch root.Kind {
	case yaml.SequenceNode:
		var list []model.PoolStats
		if err := root.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	case yaml.MappingNode:
		var snap snapshot
		if err := root.Decode(&snap); err != nil {
			return nil, err
		}
		return snap.pools()
	case 0:
		return nil, errors.New("empty snapshot")
	default:
		return nil, fmt.Errorf("snapshot must be a list or a mapping, line %d", root.Line)
	}
}

func (s snapshot) pools() ([]model.PoolStats, error) {
	if s.Pools == nil {
		return nil, errors.New(`snapshot object has no "pools" list`)
	}
	return *s.Pools, nil
}
