package serializer

import (
	"gopkg.in/yaml.v3"
)

// NewYAMLSerializer creates a new serializer using yaml encoding
func NewYAMLSerializer() ISerializer {
	return &yamlSerializerImpl{}
}

// yamlSerializerImpl implements the ISerializer interface using yaml encoding
type yamlSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (y yamlSerializerImpl) Serialize(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (y yamlSerializerImpl) Deserialize(b []byte, v any) error {
	return yaml.Unmarshal(b, v)
}
