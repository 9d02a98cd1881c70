package presets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/schema"
)

// ============================================================
// Presets
// ============================================================

//go:embed *.yaml
var files embed.FS

// ErrNotFound: пресета с таким именем нет.
var ErrNotFound = errors.New("preset not found")

// Names возвращает имена встроенных пресетов по алфавиту.
func Names() []string {
	entries, err := fs.Glob(files, "*.yaml")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(path.Base(e), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func Raw(name string) ([]byte, error) {
	if strings.ContainsAny(name, "/\\.") || name == "" {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := files.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return data, nil
}

// Load читает пресет и декодирует его тем же путём, что и тело запроса.
func Load(name string) (models.BuildingConfig, error) {
	data, err := Raw(name)
	if err != nil {
		return models.BuildingConfig{}, err
	}
	return schema.Decode(data, schema.FormatYAML)
}
