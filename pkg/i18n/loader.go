package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithYAMLDir loads translations from YAML files in fsys.
// Files must follow the {lang}/{namespace}.yaml (or .yml) layout:
//
//	en/form.yaml
//	lt/form.yaml
func WithYAMLDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			switch strings.ToLower(path.Ext(filePath)) {
			case ".yaml", ".yml":
			default:
				return nil
			}

			dir := path.Dir(filePath)
			if dir == "." || dir == "" {
				return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
			}

			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("reading %q: %w", filePath, err)
			}

			var translations map[string]any
			if err := yaml.Unmarshal(data, &translations); err != nil {
				return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
			}

			namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
			i.add(path.Base(dir), namespace, translations)
			return nil
		})
	}
}
