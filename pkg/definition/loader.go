package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formdoc/pkg/model"
)

// Parse decodes a JSON or YAML definition and builds the form it describes.
// source names the definition in error messages.
func Parse(data []byte, source string, options ...Option) (*model.Form, error) {
	cfg := newConfig(options)
	file, err := decode(data, source)
	if err != nil {
		return nil, err
	}
	return cfg.buildForm(file, source)
}

// LoadFile reads and parses the definition at path.
func LoadFile(path string, options ...Option) (*model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(data, path, options...)
}

// Store holds the forms loaded by LoadFS. It is read-only after construction;
// callers must not mutate the returned forms.
type Store struct {
	forms   map[string]*model.Form
	sources map[string]string
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file as one form.
// Forms are keyed by their id, or by the file name without extension when no
// id is given. When fsys is nil or holds no definitions the store is empty.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	cfg := newConfig(options)
	store := &Store{
		forms:   make(map[string]*model.Form),
		sources: make(map[string]string),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(name) {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", name, err)
		}
		file, err := decode(data, name)
		if err != nil {
			return err
		}

		id := strings.TrimSpace(file.ID)
		if id == "" {
			id = strings.TrimSuffix(path.Base(name), path.Ext(name))
		}
		if previous, exists := store.sources[id]; exists {
			return fmt.Errorf("definition: duplicate form %q (files %s and %s)", id, previous, name)
		}

		form, err := cfg.buildForm(file, name)
		if err != nil {
			return err
		}
		store.forms[id] = form
		store.sources[id] = name
		cfg.logger.Debugw("form definition loaded", "id", id, "source", name, "fields", form.Len())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the form registered under id.
func (s *Store) Form(id string) (*model.Form, bool) {
	if s == nil {
		return nil, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// Source returns the path the form id was loaded from.
func (s *Store) Source(id string) string {
	if s == nil {
		return ""
	}
	return s.sources[id]
}

// IDs lists the loaded form ids in lexical order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len reports the number of loaded forms.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.forms)
}

func decode(data []byte, source string) (formFile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return formFile{}, fmt.Errorf("definition: file %s is empty", source)
	}

	var file formFile
	jsonErr := json.Unmarshal(trimmed, &file)
	if jsonErr == nil {
		return file, nil
	}
	if trimmed[0] == '{' {
		return formFile{}, fmt.Errorf("definition: parse %s: %w", source, jsonErr)
	}

	file = formFile{}
	if err := yaml.Unmarshal(trimmed, &file); err != nil {
		return formFile{}, fmt.Errorf("definition: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return file, nil
}

func isDefinitionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
