package resolver

import "strings"

// transformFunc post-processes a field's winning raw value.
type transformFunc func(r *Resolver, value string) (string, error)

// fieldTransforms registers per-field transforms. Only SOURCE carries one
// today; the registry is the extension point for other fields that can
// yield embedded objects in some schemas.
var fieldTransforms = map[Field]transformFunc{
	Source: transformRepositoryURL,
}

// transformRepositoryURL normalizes repository values into a plain URL:
// unwrap an embedded {"url": ...} object, strip the git+ scheme marker and
// a trailing .git suffix.
func transformRepositoryURL(r *Resolver, value string) (string, error) {
	if value == "" {
		return "", nil
	}

	if strings.HasPrefix(value, "{") {
		sub, found, err := r.manifest.QueryJSON(value, "url")
		if err != nil {
			return "", err
		}
		sub = stripQuotes(sub)
		if !found || sub == "" || sub == "null" {
			return "", nil
		}
		value = sub
	}

	value = stripQuotes(value)
	value = strings.TrimPrefix(value, "git+")
	value = strings.TrimSuffix(value, ".git")
	return value, nil
}
