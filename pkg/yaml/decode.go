package yaml

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

// MapSlice is an ordered YAML mapping, re-exported so callers that need
// document order do not import goccy/go-yaml directly.
type (
	MapSlice = yaml.MapSlice
	MapItem  = yaml.MapItem
)

// Decoder decodes YAML documents, converting goccy/go-yaml errors into
// [Error]s that carry the token where decoding failed.
type Decoder struct {
	d *yaml.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		d: yaml.NewDecoder(r, yaml.AllowDuplicateMapKey()),
	}
}

func (d *Decoder) Decode(v any) error {
	err := d.d.Decode(v)
	if err == nil {
		return nil
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return &Error{
			Err:   errors.New(yamlErr.GetMessage()),
			Token: yamlErr.GetToken(),
		}
	}

	//nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
	return err
}
