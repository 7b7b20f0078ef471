package byteserve

import (
	"os"

	contenttype "github.com/byteserve/byteserve/pkg/content-type"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration. It carries extension
// table entries added on top of the built-in defaults, keyed by
// extension including the leading dot.
type FileConfig struct {
	ContentTypes     map[string]string `yaml:"contentTypes"`
	ContentEncodings map[string]string `yaml:"contentEncodings"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(filename string) (FileConfig, error) {
	var config FileConfig
	configBytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(configBytes, &config)
	return config, err
}

// Table builds the extension lookup table: the built-in defaults
// extended (and overridden) by the config file entries.
func (c FileConfig) Table() *contenttype.Table {
	return contenttype.Default().Extend(c.ContentTypes, c.ContentEncodings)
}
