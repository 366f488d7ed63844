package manifest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// tomlEngine queries TOML documents by unmarshalling into a generic map and
// walking the dotted path.
type tomlEngine struct{}

func (e *tomlEngine) Name() string    { return "burntsushi-toml" }
func (e *tomlEngine) Available() bool { return true }

func (e *tomlEngine) Query(content []byte, path string) (string, bool, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return "", false, fmt.Errorf("invalid toml document: %w", err)
	}

	var current interface{} = doc
	for _, segment := range splitPath(path) {
		if strings.HasPrefix(segment, "[") && strings.HasSuffix(segment, "]") {
			index, err := strconv.Atoi(segment[1 : len(segment)-1])
			if err != nil {
				return "", false, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			list, ok := current.([]interface{})
			if !ok || index < 0 || index >= len(list) {
				return "", false, nil
			}
			current = list[index]
			continue
		}

		table, ok := current.(map[string]interface{})
		if !ok {
			return "", false, nil
		}
		current, ok = table[segment]
		if !ok {
			return "", false, nil
		}
	}

	return renderScalar(current)
}

// renderScalar converts a TOML leaf into its string form. Tables and arrays
// have no string form and count as not found; field paths that need a
// sub-value address it explicitly.
func renderScalar(value interface{}) (string, bool, error) {
	switch v := value.(type) {
	case string:
		return v, true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case time.Time:
		return v.Format(time.RFC3339), true, nil
	case map[string]interface{}, []interface{}:
		return "", false, nil
	default:
		return fmt.Sprint(v), true, nil
	}
}
