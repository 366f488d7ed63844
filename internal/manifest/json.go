package manifest

import (
	"github.com/buger/jsonparser"
)

// jsonEngine queries JSON documents with jsonparser, which addresses nested
// keys directly and understands "[n]" segments for array indices.
type jsonEngine struct{}

func (e *jsonEngine) Name() string    { return "jsonparser" }
func (e *jsonEngine) Available() bool { return true }

func (e *jsonEngine) Query(content []byte, path string) (string, bool, error) {
	value, dataType, _, err := jsonparser.Get(content, splitPath(path)...)
	if err != nil {
		if err == jsonparser.KeyPathNotFoundError {
			return "", false, nil
		}
		return "", false, err
	}

	switch dataType {
	case jsonparser.NotExist:
		return "", false, nil
	case jsonparser.Null:
		// Surfaced as the literal so the resolver's null check applies.
		return "null", true, nil
	default:
		// Strings arrive unquoted and unescaped; objects and arrays arrive
		// as raw JSON, which the repository-url transform relies on.
		return string(value), true, nil
	}
}
